package prog

import "flag"

// FlagSet wraps a [flag.FlagSet]. It provides methods to register flags
// shared by multiple subprograms; calling them more than once returns the same
// variable.
type FlagSet struct {
	*flag.FlagSet
	json   *bool
	dbPath *string
}

// JSON returns a pointer to the value of the -json flag.
func (fs *FlagSet) JSON() *bool {
	if fs.json == nil {
		var json bool
		fs.BoolVar(&json, "json", false,
			"show output from -buildinfo or -history in JSON")
		fs.json = &json
	}
	return fs.json
}

// DBPath returns a pointer to the value of the -db flag.
func (fs *FlagSet) DBPath() *string {
	if fs.dbPath == nil {
		var db string
		fs.StringVar(&db, "db", "", "path to the database of results")
		fs.dbPath = &db
	}
	return fs.dbPath
}
