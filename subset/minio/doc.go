// Package minio provides a subset.Source reading line-delimited value
// lists from MinIO and other S3-compatible object stores (Ceph, Garage,
// SeaweedFS) using the official MinIO client.
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src := miniosubset.New(client, "lists", "barcodes.txt")
package minio
