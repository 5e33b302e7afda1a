package snapshot

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

var (
	nodePrefix = []byte("node/")
	edgePrefix = []byte("edge/")
)

// BadgerStore persists snapshot collections in a Badger keyspace.
// Keys are zero-padded sequence numbers under node/ and edge/
// prefixes, so a prefix scan in key order reproduces the original
// collection order.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a Badger store at path.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close releases the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Save replaces any previously stored snapshot with the given
// collections.
func (s *BadgerStore) Save(c *Collections) error {
	if err := s.db.DropPrefix(nodePrefix, edgePrefix); err != nil {
		return fmt.Errorf("clearing previous snapshot: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for i, n := range c.Nodes {
		rec, err := encodeNode(n)
		if err != nil {
			return err
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding node %s: %w", n.ID, err)
		}
		if err := wb.Set(seqKey(nodePrefix, i), data); err != nil {
			return fmt.Errorf("writing node %s: %w", n.ID, err)
		}
	}
	for i, e := range c.Edges {
		rec, err := encodeEdge(e)
		if err != nil {
			return err
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding edge %s: %w", e.Key(), err)
		}
		if err := wb.Set(seqKey(edgePrefix, i), data); err != nil {
			return fmt.Errorf("writing edge %s: %w", e.Key(), err)
		}
	}
	return wb.Flush()
}

// Load reads the stored snapshot back in its original order.
func (s *BadgerStore) Load() (*Collections, error) {
	c := &Collections{}
	err := s.db.View(func(txn *badger.Txn) error {
		if err := scanPrefix(txn, nodePrefix, func(data []byte) error {
			var rec nodeRecord
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("parsing stored node: %w", err)
			}
			n, err := decodeNode(rec)
			if err != nil {
				return err
			}
			c.Nodes = append(c.Nodes, n)
			return nil
		}); err != nil {
			return err
		}
		return scanPrefix(txn, edgePrefix, func(data []byte) error {
			var rec edgeRecord
			if err := json.Unmarshal(data, &rec); err != nil {
				return fmt.Errorf("parsing stored edge: %w", err)
			}
			e, err := decodeEdge(rec)
			if err != nil {
				return err
			}
			c.Edges = append(c.Edges, e)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func seqKey(prefix []byte, i int) []byte {
	return []byte(fmt.Sprintf("%s%012d", prefix, i))
}

func scanPrefix(txn *badger.Txn, prefix []byte, fn func([]byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Rewind(); it.Valid(); it.Next() {
		if err := it.Item().Value(func(val []byte) error {
			return fn(val)
		}); err != nil {
			return err
		}
	}
	return nil
}
