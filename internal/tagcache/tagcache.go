// Package tagcache persists AI-generated tags and descriptions in a BoltDB
// database keyed by image source path, so a re-scan of a folder can restore
// annotations without re-running inference.
package tagcache

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

const (
	dbFileName = "fotogrid_cache.db"
	// PathToTagsBucket maps image path to a JSON-encoded list of tags.
	PathToTagsBucket = "PathToTags"
	// PathToDescriptionsBucket maps image path to a plain description string.
	PathToDescriptionsBucket = "PathToDescriptions"
)

// LoggerFunc defines a function signature for logging messages, so callers
// can route diagnostics to their own logging mechanism.
type LoggerFunc func(message string)

// DB manages the annotation cache database.
type DB struct {
	db     *bolt.DB
	logger LoggerFunc
}

// Open creates or opens the cache database file. dbDir specifies the
// directory for the db file; when empty, an app subdirectory of the user
// config directory is used (falling back to the current directory).
func Open(dbDir string, logger LoggerFunc) (*DB, error) {
	if dbDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			log.Printf("Warning: could not get user config dir: %v. Using current dir.", err)
			dbDir = "."
		} else {
			appConfigDir := filepath.Join(configDir, "fotogrid")
			if err := os.MkdirAll(appConfigDir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create config directory %s: %w", appConfigDir, err)
			}
			dbDir = appConfigDir
		}
	}

	dbPath := filepath.Join(dbDir, dbFileName)
	if logger != nil {
		logger(fmt.Sprintf("Using annotation cache at: %s", dbPath))
	}

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotation cache %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{PathToTagsBucket, PathToDescriptionsBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db, logger: logger}, nil
}

// Close closes the database connection.
func (c *DB) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

func encodeList(list []string) ([]byte, error) {
	return json.Marshal(list)
}

func decodeList(data []byte) ([]string, error) {
	var list []string
	if data == nil {
		return []string{}, nil
	}
	err := json.Unmarshal(data, &list)
	return list, err
}

// SetTags stores the tags for an image path, replacing any previous set.
func (c *DB) SetTags(imagePath string, tags []string) error {
	if imagePath == "" {
		return fmt.Errorf("image path cannot be empty")
	}
	encoded, err := encodeList(tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags for '%s': %w", imagePath, err)
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(PathToTagsBucket)).Put([]byte(imagePath), encoded)
	})
}

// Tags retrieves the cached tags for an image path. A path with no entry
// returns an empty list, not an error.
func (c *DB) Tags(imagePath string) ([]string, error) {
	var tags []string
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(PathToTagsBucket)).Get([]byte(imagePath))
		var err error
		tags, err = decodeList(data)
		if err != nil {
			return fmt.Errorf("failed to decode tags for image %s: %w", imagePath, err)
		}
		return nil
	})
	return tags, err
}

// SetDescription stores the description for an image path.
func (c *DB) SetDescription(imagePath, description string) error {
	if imagePath == "" {
		return fmt.Errorf("image path cannot be empty")
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(PathToDescriptionsBucket)).Put([]byte(imagePath), []byte(description))
	})
}

// Description retrieves the cached description, "" when absent.
func (c *DB) Description(imagePath string) (string, error) {
	var description string
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(PathToDescriptionsBucket)).Get([]byte(imagePath))
		description = string(data)
		return nil
	})
	return description, err
}

// Each calls fn for every cached path with its tags and description. A path
// may live in either bucket alone (described but never tagged, or the
// reverse), so both are walked. Used by the CLI to dump the cache.
func (c *DB) Each(fn func(imagePath string, tags []string, description string) error) error {
	return c.db.View(func(tx *bolt.Tx) error {
		descriptions := tx.Bucket([]byte(PathToDescriptionsBucket))
		seen := map[string]struct{}{}
		err := tx.Bucket([]byte(PathToTagsBucket)).ForEach(func(k, v []byte) error {
			seen[string(k)] = struct{}{}
			tags, err := decodeList(v)
			if err != nil {
				if c.logger != nil {
					c.logger(fmt.Sprintf("Error decoding tags for '%s', skipping: %v", string(k), err))
				}
				return nil
			}
			description := string(descriptions.Get(k))
			return fn(string(k), tags, description)
		})
		if err != nil {
			return err
		}
		return descriptions.ForEach(func(k, v []byte) error {
			if _, ok := seen[string(k)]; ok {
				return nil
			}
			return fn(string(k), []string{}, string(v))
		})
	})
}
