package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"solum/internal/token"
)

// Current schema version - increment when TokenPayload format changes.
const tokenCacheSchemaVersion uint16 = 1

// DiskCache stores raw token streams keyed by the content hash of the
// source file. Only raw tokens go to disk: symbols are handles into a
// session and mean nothing across processes, so identifiers are
// re-interned when a cached stream is cooked.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// RawToken is the on-disk shape of one token.
type RawToken struct {
	Kind  uint8
	Lit   uint8
	Base  uint8
	Flags uint8
	Len   uint32
}

// TokenPayload is the cached token stream for one file.
type TokenPayload struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16
	// Path is informational only; the key is the content hash.
	Path   string
	Tokens []RawToken
}

func newTokenPayload(path string, tokens []Token) *TokenPayload {
	p := &TokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   path,
		Tokens: make([]RawToken, len(tokens)),
	}
	for i, t := range tokens {
		p.Tokens[i] = RawToken{
			Kind:  uint8(t.Raw.Kind),
			Lit:   uint8(t.Raw.Lit),
			Base:  uint8(t.Raw.Base),
			Flags: uint8(t.Raw.Flags),
			Len:   t.Raw.Len,
		}
	}
	return p
}

// coversContent reports whether the cached lengths add up to the content,
// so cooking can slice lexeme text without bounds surprises.
func (p *TokenPayload) coversContent(content []byte) bool {
	total := uint64(0)
	for _, rt := range p.Tokens {
		total += uint64(rt.Len)
	}
	return total == uint64(len(content))
}

func (p *TokenPayload) rawTokens() []token.Token {
	out := make([]token.Token, len(p.Tokens))
	for i, rt := range p.Tokens {
		out[i] = token.Token{
			Kind:  token.Kind(rt.Kind),
			Lit:   token.LitKind(rt.Lit),
			Base:  token.Base(rt.Base),
			Flags: token.Flags(rt.Flags),
			Len:   rt.Len,
		}
	}
	return out
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location (XDG_CACHE_HOME or ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at dir. Tests use this
// to avoid touching the user's cache.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Subdirectory keeps the cache root readable and easy to wipe.
	return filepath.Join(c.dir, "tokens", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key [32]byte, payload *TokenPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if removeErr := os.Remove(f.Name()); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			fmt.Printf("failed to remove temp file: %v", removeErr)
		}
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key [32]byte, out *TokenPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
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
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
