package repositories

import (
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// Counter names recorded by the services.
const (
	StatUsersCreated    = "users_created"
	StatUsersUpdated    = "users_updated"
	StatUsersDeleted    = "users_deleted"
	StatPostsCreated    = "posts_created"
	StatPostsUpdated    = "posts_updated"
	StatPostsDeleted    = "posts_deleted"
	StatCommentsCreated = "comments_created"
	StatCommentsUpdated = "comments_updated"
	StatCommentsDeleted = "comments_deleted"
)

// BadgerStatsRepository implements StatsRepository using BadgerDB
type BadgerStatsRepository struct {
	db *badger.DB
}

// NewBadgerStatsRepository creates a new BadgerStatsRepository
func NewBadgerStatsRepository(db *badger.DB) *BadgerStatsRepository {
	return &BadgerStatsRepository{db: db}
}

// Increment adds one to the named counter
func (r *BadgerStatsRepository) Increment(counter string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := []byte(StatKeyPrefix + counter)
		var count int
		item, err := txn.Get(key)
		if err == nil {
			err = item.Value(func(val []byte) error {
				count, err = strconv.Atoi(string(val))
				return err
			})
			if err != nil {
				return err
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}
		count++
		return txn.Set(key, []byte(strconv.Itoa(count)))
	})
}

// Snapshot returns all counters recorded so far
func (r *BadgerStatsRepository) Snapshot() (map[string]int, error) {
	stats := make(map[string]int)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(StatKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			name := strings.TrimPrefix(string(item.Key()), StatKeyPrefix)
			err := item.Value(func(val []byte) error {
				count, err := strconv.Atoi(string(val))
				if err != nil {
					return err
				}
				stats[name] = count
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
