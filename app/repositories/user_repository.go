package repositories

import (
	"fmt"
	"strconv"

	"github.com/truethari/SocialMedia-API/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create creates a new user. The email must be unique.
func (r *BadgerUserRepository) Create(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		emailKey := []byte(UserEmailPrefix + user.Email)
		_, err := txn.Get(emailKey)
		if err == nil {
			return ErrDuplicateEmail
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		id, err := getNextID(txn, UserSeqKey)
		if err != nil {
			return err
		}
		user.ID = id
		user.BeforeCreate()

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}

		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, user.ID))
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(strconv.Itoa(user.ID)))
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id int) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		return getUser(txn, id, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user through the email index
func (r *BadgerUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(UserEmailPrefix + email))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id int
		err = item.Value(func(val []byte) error {
			id, err = strconv.Atoi(string(val))
			return err
		})
		if err != nil {
			return err
		}
		return getUser(txn, id, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves a paginated list of users
func (r *BadgerUserRepository) List(limit, offset int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		count := 0
		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if count < offset {
				count++
				continue
			}
			if count >= offset+limit {
				break
			}

			item := it.Item()
			var user models.User
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal user: %v", err)
			}
			users = append(users, &user)
			count++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates an existing user, moving the email index if needed
func (r *BadgerUserRepository) Update(user *models.User) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var existing models.User
		if err := getUser(txn, user.ID, &existing); err != nil {
			return err
		}

		if existing.Email != user.Email {
			newEmailKey := []byte(UserEmailPrefix + user.Email)
			_, err := txn.Get(newEmailKey)
			if err == nil {
				return ErrDuplicateEmail
			}
			if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Delete([]byte(UserEmailPrefix + existing.Email)); err != nil {
				return err
			}
			if err := txn.Set(newEmailKey, []byte(strconv.Itoa(user.ID))); err != nil {
				return err
			}
		}

		data, err := marshalEntity(user)
		if err != nil {
			return err
		}
		key := []byte(fmt.Sprintf("%s%d", UserKeyPrefix, user.ID))
		return txn.Set(key, data)
	})
}

// Delete deletes a user by ID along with its email index entry
func (r *BadgerUserRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var existing models.User
		if err := getUser(txn, id, &existing); err != nil {
			return err
		}

		if err := txn.Delete([]byte(UserEmailPrefix + existing.Email)); err != nil {
			return err
		}
		return txn.Delete([]byte(fmt.Sprintf("%s%d", UserKeyPrefix, id)))
	})
}

// getUser loads a user by ID within a transaction
func getUser(txn *badger.Txn, id int, user *models.User) error {
	item, err := txn.Get([]byte(fmt.Sprintf("%s%d", UserKeyPrefix, id)))
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, user)
	})
}
