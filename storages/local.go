package storages

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"strconv"

	"github.com/boltdb/bolt"

	"github.com/stewardkit/steward"
	"github.com/stewardkit/steward/extid"
	"github.com/stewardkit/steward/reflects"
)

// NewLocal opens (or creates) a BoltDB backed storage at the given path.
func NewLocal(path string) (*Local, error) {
	db, err := bolt.Open(path, 0600, nil)

	return &Local{db: db}, err
}

// Local persists entities into a BoltDB file, one bucket per entity type,
// values gob encoded. External ids are the bucket sequence numbers rendered
// as strings, so the entity's id field must be a string.
type Local struct {
	db *bolt.DB
}

// Close the local database and release the file lock
func (storage *Local) Close() error {
	return storage.db.Close()
}

func (storage *Local) Save(ctx context.Context, ptr steward.Entity) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, ok := extid.Lookup(ptr); !ok {
		return true, storage.create(ptr)
	}
	return true, storage.update(ptr)
}

func (storage *Local) create(ptr steward.Entity) error {
	return storage.db.Update(func(tx *bolt.Tx) error {
		bucket, err := storage.ensureBucketFor(tx, ptr)
		if err != nil {
			return err
		}

		uIntID, err := bucket.NextSequence()
		if err != nil {
			return err
		}

		if err := extid.Set(ptr, strconv.FormatUint(uIntID, 10)); err != nil {
			return err
		}

		value, err := storage.encode(ptr)
		if err != nil {
			return err
		}

		return bucket.Put(storage.uintToBytes(uIntID), value)
	})
}

func (storage *Local) update(ptr steward.Entity) error {
	id, _ := extid.Lookup(ptr)

	key, err := storage.idToBytes(id)
	if err != nil {
		return err
	}

	value, err := storage.encode(ptr)
	if err != nil {
		return err
	}

	return storage.db.Update(func(tx *bolt.Tx) error {
		bucket, err := storage.bucketFor(tx, ptr)
		if err != nil {
			return err
		}

		if bucket.Get(key) == nil {
			return steward.ErrNotFound
		}

		return bucket.Put(key, value)
	})
}

func (storage *Local) FindByID(ctx context.Context, ptr steward.Entity, id steward.ID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	key, err := storage.idToBytes(id)
	if err != nil {
		return false, err
	}

	var found bool
	err = storage.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storage.bucketName(ptr))
		if bucket == nil {
			return nil
		}

		encodedValue := bucket.Get(key)
		if encodedValue == nil {
			return nil
		}

		found = true
		return storage.decode(encodedValue, ptr)
	})

	return found, err
}

func (storage *Local) FindAll(ctx context.Context, T steward.Entity) ([]steward.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ents []steward.Entity
	err := storage.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storage.bucketName(T))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(key, encodedValue []byte) error {
			ptr := reflects.New(T)
			if err := storage.decode(encodedValue, ptr); err != nil {
				return err
			}
			ents = append(ents, reflects.BaseValueOf(ptr).Interface())
			return nil
		})
	})

	return ents, err
}

func (storage *Local) Destroy(ctx context.Context, ptr steward.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, ok := extid.Lookup(ptr)
	if !ok {
		return fmt.Errorf(`%T doesn't have a linked external id`, ptr)
	}

	key, err := storage.idToBytes(id)
	if err != nil {
		return err
	}

	return storage.db.Update(func(tx *bolt.Tx) error {
		bucket, err := storage.bucketFor(tx, ptr)
		if err != nil {
			return err
		}

		if bucket.Get(key) == nil {
			return steward.ErrNotFound
		}

		return bucket.Delete(key)
	})
}

func (storage *Local) encode(ent steward.Entity) ([]byte, error) {
	buffer := bytes.NewBuffer([]byte{})
	err := gob.NewEncoder(buffer).Encode(reflects.BaseValueOf(ent).Interface())
	return buffer.Bytes(), err
}

func (storage *Local) decode(value []byte, ptr steward.Entity) error {
	return gob.NewDecoder(bytes.NewReader(value)).Decode(ptr)
}

func (storage *Local) bucketName(ent steward.Entity) []byte {
	return []byte(reflects.SymbolicName(ent))
}

func (storage *Local) bucketFor(tx *bolt.Tx, ent steward.Entity) (*bolt.Bucket, error) {
	bucket := tx.Bucket(storage.bucketName(ent))

	var err error

	if bucket == nil {
		err = steward.ErrNotFound
	}

	return bucket, err
}

func (storage *Local) ensureBucketFor(tx *bolt.Tx, ent steward.Entity) (*bolt.Bucket, error) {
	return tx.CreateBucketIfNotExists(storage.bucketName(ent))
}

func (storage *Local) idToBytes(id steward.ID) ([]byte, error) {
	encodedID, ok := id.(string)
	if !ok {
		return nil, fmt.Errorf(`id should be a string, not %T`, id)
	}

	uIntID, err := strconv.ParseUint(encodedID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf(`%q is not a valid external id`, encodedID)
	}

	return storage.uintToBytes(uIntID), nil
}

func (storage *Local) uintToBytes(id uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, id)
	return b
}
