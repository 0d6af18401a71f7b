// Package reconcile compares copies of the country dataset held by different
// sources, typically the local file, the storage bucket and the database table.
//
// Every source is loaded concurrently and indexed by record key (cca3, or the
// normalized common name when cca3 is missing). The union of keys is then
// walked once to report which sources hold each record and which top-level
// fields differ between the copies.
//
// # Usage Example
//
//	report, err := reconcile.Compare(ctx, fileSource, storageSource)
//	for _, r := range report.Diverged() {
//	    fmt.Println(r.Key, r.Missing, r.Mismatch)
//	}
package reconcile
