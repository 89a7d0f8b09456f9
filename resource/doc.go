// Package resource reads application resources from any fs.FS — an embedded
// filesystem, a zip archive, or an OS directory via os.DirFS.
//
//	//go:embed assets
//	var assets embed.FS
//
//	cfg, err := resource.ReadString(assets, "assets/config.json")
//
// [LineIter] exposes a reader as a lazy line sequence, which composes
// directly with the partitioning iterator for batch processing; its Err
// method surfaces any read error once iteration finishes:
//
//	f, _ := assets.Open("assets/orders.csv")
//	defer f.Close()
//	it := resource.NewLineIter(f)
//	for batch := range iters.Partition(it.Lines(), 500) {
//	    process(batch)
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// Missing resources and failed reads are data conditions, not programmer
// errors: every reader returns a wrapped error — [ErrNotFound] for absent
// names — rather than panicking or truncating silently.
package resource
