package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stemgraph/dataset"
	"github.com/katalvlaran/stemgraph/species"
)

// DecodeRecords reads a YAML or JSON list of records from r.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var recs []Record
	if err := yaml.NewDecoder(r).Decode(&recs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decode records")
	}
	return recs, nil
}

// ReadFile reads the records in a .json, .yaml or .yml file.
func ReadFile(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	recs, err := DecodeRecords(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return recs, nil
}

// LoadFile reads a record file and converts it into dataset entries.
func LoadFile(path string, tbl species.Table) (dataset.Entries, error) {
	recs, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Entries(recs, tbl)
}

// Load reads entries from a record file or, for .db, .sqlite and .sqlite3
// paths, from a SQLite store.
func Load(ctx context.Context, path string, tbl species.Table) (dataset.Entries, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		st, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Entries(ctx, tbl)
	}
	return LoadFile(path, tbl)
}
