// Package mcdb implements a LevelDB backed chunk store. Columns are encoded
// into a versioned little-endian format and keyed by their chunk position.
package mcdb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/cubeworks/genesis/server/block/cube"
	"github.com/cubeworks/genesis/server/world"
	"github.com/cubeworks/genesis/server/world/chunk"
	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
)

// ErrNotFound is returned by LoadColumn when no column is stored at the
// position passed.
var ErrNotFound = leveldb.ErrNotFound

// chunkVersion is the current version of the on-disk column encoding.
const chunkVersion = 1

// maxColumnHeight bounds the vertical range accepted when decoding a stored
// column, limiting the allocation a corrupt entry can cause.
const maxColumnHeight = 4096

// Config holds the settings of a DB.
type Config struct {
	// Log is used for informational messages on the database. If nil, a
	// default logger is used.
	Log *slog.Logger
	// Compression specifies the compression applied to blocks written to the
	// database. By default, flate compression is used.
	Compression opt.Compression
	// BlockSize is the size of the blocks that values are collected into
	// before being written. By default, a block size of 16KiB is used.
	BlockSize int
}

func (conf Config) withDefaults() Config {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Compression == opt.DefaultCompression {
		conf.Compression = opt.FlateCompression
	}
	if conf.BlockSize == 0 {
		conf.BlockSize = 16 * opt.KiB
	}
	return conf
}

// Open opens or creates the database at the directory passed using the
// settings in conf.
func (conf Config) Open(dir string) (*DB, error) {
	conf = conf.withDefaults()
	ldb, err := leveldb.OpenFile(dir, &opt.Options{
		Compression: conf.Compression,
		BlockSize:   conf.BlockSize,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &DB{conf: conf, ldb: ldb}, nil
}

// Open opens or creates a database at the directory passed with the default
// configuration.
func Open(dir string) (*DB, error) {
	return Config{}.Open(dir)
}

// DB is a LevelDB backed chunk store. It is safe for concurrent use.
type DB struct {
	conf Config
	ldb  *leveldb.DB
}

// StoreColumn stores the chunk passed at a chunk position.
func (db *DB) StoreColumn(pos world.ChunkPos, c *chunk.Chunk) error {
	data, err := encodeColumn(c)
	if err != nil {
		return fmt.Errorf("store column %v: %w", pos, err)
	}
	if err := db.ldb.Put(chunkKey(pos), data, nil); err != nil {
		return fmt.Errorf("store column %v: %w", pos, err)
	}
	return nil
}

// LoadColumn loads the chunk stored at a chunk position. If no column is
// stored at the position, an error wrapping ErrNotFound is returned.
func (db *DB) LoadColumn(pos world.ChunkPos) (*chunk.Chunk, error) {
	data, err := db.ldb.Get(chunkKey(pos), nil)
	if err != nil {
		return nil, fmt.Errorf("load column %v: %w", pos, err)
	}
	c, err := decodeColumn(pos, data)
	if err != nil {
		return nil, fmt.Errorf("load column %v: %w", pos, err)
	}
	return c, nil
}

// Close flushes and closes the underlying database.
func (db *DB) Close() error {
	return db.ldb.Close()
}

// chunkKey returns the database key of the column at the position passed.
func chunkKey(pos world.ChunkPos) []byte {
	key := make([]byte, 9)
	key[0] = 'c'
	binary.LittleEndian.PutUint32(key[1:], uint32(pos[0]))
	binary.LittleEndian.PutUint32(key[5:], uint32(pos[1]))
	return key
}

// encodeColumn encodes a chunk into the versioned column format: a version
// byte, the vertical range, the block runtime IDs in enumeration order and
// the biome map.
func encodeColumn(c *chunk.Chunk) ([]byte, error) {
	b := c.Bounds()
	buf := bytes.NewBuffer(make([]byte, 0, 1+8+4*b.Volume()+chunk.Width*chunk.Width))

	buf.WriteByte(chunkVersion)
	var r [8]byte
	binary.LittleEndian.PutUint32(r[:], uint32(b.Min[1]))
	binary.LittleEndian.PutUint32(r[4:], uint32(b.Max[1]))
	buf.Write(r[:])

	var cell [4]byte
	for pos := range c.Coordinates() {
		rid, err := c.At(pos)
		if err != nil {
			return nil, err
		}
		binary.LittleEndian.PutUint32(cell[:], rid)
		buf.Write(cell[:])
	}
	for x := b.Min[0]; x <= b.Max[0]; x++ {
		for z := b.Min[2]; z <= b.Max[2]; z++ {
			id, err := c.Biome(x, z)
			if err != nil {
				return nil, err
			}
			buf.WriteByte(id)
		}
	}
	return buf.Bytes(), nil
}

// decodeColumn decodes a column encoded by encodeColumn into a chunk at the
// position passed.
func decodeColumn(pos world.ChunkPos, data []byte) (*chunk.Chunk, error) {
	if len(data) < 9 {
		return nil, fmt.Errorf("column data too short (%v bytes)", len(data))
	}
	if data[0] != chunkVersion {
		return nil, fmt.Errorf("unsupported column version %v", data[0])
	}
	r := cube.Range{
		int(int32(binary.LittleEndian.Uint32(data[1:]))),
		int(int32(binary.LittleEndian.Uint32(data[5:]))),
	}
	// The range comes straight off disk: reject malformed values here rather
	// than letting chunk.New panic or allocate an absurd column.
	if r.Min() > r.Max() {
		return nil, fmt.Errorf("column range min %v exceeds max %v", r.Min(), r.Max())
	}
	if r.Height() > maxColumnHeight {
		return nil, fmt.Errorf("column height %v exceeds maximum %v", r.Height(), maxColumnHeight)
	}
	c := chunk.New(pos[0], pos[1], r)
	b := c.Bounds()

	blocks := data[9:]
	want := 4*b.Volume() + chunk.Width*chunk.Width
	if len(blocks) != want {
		return nil, fmt.Errorf("column data has %v payload bytes, expected %v", len(blocks), want)
	}
	for p := range c.Coordinates() {
		if err := c.Set(p, binary.LittleEndian.Uint32(blocks)); err != nil {
			return nil, err
		}
		blocks = blocks[4:]
	}
	for x := b.Min[0]; x <= b.Max[0]; x++ {
		for z := b.Min[2]; z <= b.Max[2]; z++ {
			if err := c.SetBiome(x, z, blocks[0]); err != nil {
				return nil, err
			}
			blocks = blocks[1:]
		}
	}
	return c, nil
}
