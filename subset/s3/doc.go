// Package s3 provides a subset.Source reading line-delimited value lists
// from Amazon S3.
//
// Cohort barcode and gene lists are commonly shared via object storage;
// this source downloads the object once per condition and hands the bytes
// to the shared decompress-and-split path.
//
//	src, err := s3.NewFromDefaultConfig(ctx, "my-bucket", "lists/barcodes.txt.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	spec.Subsets = append(spec.Subsets, filter.CategorySpec{Name: "index", Source: src})
package s3
