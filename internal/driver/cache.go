package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"g5/internal/diag"
	"g5/internal/parser"
	"g5/internal/source"
)

// cacheSchemaVersion is bumped whenever Verdict or the parser's accepted
// language changes.
const cacheSchemaVersion uint16 = 1

// Key addresses one cached verdict.
type Key [32]byte

func (k Key) String() string { return hex.EncodeToString(k[:]) }

// KeyFor hashes the content together with every option that can change
// the verdict.
func KeyFor(content []byte, mode parser.BinaryMode) Key {
	h := sha256.New()
	fmt.Fprintf(h, "g5/%d/%s\x00", cacheSchemaVersion, mode)
	h.Write(content)
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

// Verdict is the cached outcome of checking one file.
type Verdict struct {
	Msg    string
	Schema uint16
	Code   diag.Code
	Start  uint32
	End    uint32
	Line   uint32
	Col    uint32
	OK     bool
}

func verdictFrom(err *diag.Error) Verdict {
	if err == nil {
		return Verdict{Schema: cacheSchemaVersion, OK: true}
	}
	return Verdict{
		Schema: cacheSchemaVersion,
		Code:   err.Code,
		Msg:    err.Msg,
		Start:  err.Span.Start,
		End:    err.Span.End,
		Line:   err.Pos.Line,
		Col:    err.Pos.Col,
	}
}

// Error rebuilds the diagnostic for file; nil when the verdict is OK.
func (v Verdict) Error(file *source.File) *diag.Error {
	if v.OK {
		return nil
	}
	return &diag.Error{
		Code: v.Code,
		Span: source.Span{File: file.ID, Start: v.Start, End: v.End},
		Path: file.Path,
		Pos:  source.LineCol{Line: v.Line, Col: v.Col},
		Msg:  v.Msg,
	}
}

// Cache keeps check verdicts on disk, one msgpack file per key. It is safe
// for concurrent use.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// DefaultCacheDir is $XDG_CACHE_HOME/g5 or ~/.cache/g5.
func DefaultCacheDir() (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, "g5"), nil
}

// OpenCache creates dir if needed. An empty dir selects DefaultCacheDir.
func OpenCache(dir string) (*Cache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultCacheDir(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) Dir() string { return c.dir }

func (c *Cache) pathFor(key Key) string {
	hexKey := key.String()
	return filepath.Join(c.dir, "verdicts", hexKey[:2], hexKey+".mp")
}

// Put writes v under key, replacing any previous entry atomically.
func (c *Cache) Put(key Key, v Verdict) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	v.Schema = cacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(&v); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads the verdict for key. Entries from another schema count as
// misses.
func (c *Cache) Get(key Key) (Verdict, bool, error) {
	if c == nil {
		return Verdict{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Verdict{}, false, nil
		}
		return Verdict{}, false, err
	}
	var v Verdict
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return Verdict{}, false, err
	}
	if v.Schema != cacheSchemaVersion {
		return Verdict{}, false, nil
	}
	return v, true, nil
}

// DropAll removes every entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
