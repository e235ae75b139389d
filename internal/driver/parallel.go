package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"solum/internal/diag"
	"solum/internal/source"
	"solum/internal/symbol"
)

// DefaultExtension selects source files when Options.Extension is empty.
const DefaultExtension = ".sol"

// FileResult is the per-file outcome of TokenizeDir.
type FileResult struct {
	Path     string
	FileID   source.FileID
	Tokens   []Token
	Bag      *diag.Bag
	CacheHit bool
}

// listSourceFiles returns a sorted list of files under dir with the given
// extension.
func listSourceFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order.
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every source file under dir in parallel. All files
// share one FileSet and one session, so identical identifier text in
// different files resolves to the same symbol. Results come back in sorted
// path order regardless of scheduling.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, *symbol.Session, []FileResult, error) {
	ext := opts.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	files, err := listSourceFiles(dir, ext)
	if err != nil {
		return nil, nil, nil, err
	}

	fileSet := source.NewFileSet()
	sess := symbol.NewSession()
	if len(files) == 0 {
		return fileSet, sess, nil, nil
	}

	// Preload serially; FileSet is not safe for concurrent mutation.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			loadErrors[path] = loadErr
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, so no mutex around results.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.maxDiagnostics())

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
					Primary:  source.Span{},
				})
				results[i] = FileResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			tokens, hit := tokenizeWithCache(file, sess, bag, opts.Cache)
			results[i] = FileResult{
				Path:     path,
				FileID:   fileID,
				Tokens:   tokens,
				Bag:      bag,
				CacheHit: hit,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, sess, results, err
	}
	return fileSet, sess, results, nil
}

// tokenizeWithCache scans the file, going through the disk cache when one
// is configured. Cached streams hold only raw tokens; cooking (spans,
// interning, diagnostics) always runs against the current session.
func tokenizeWithCache(file *source.File, sess *symbol.Session, bag *diag.Bag, cache *DiskCache) (tokens []Token, hit bool) {
	if cache == nil {
		return TokenizeFile(file, sess, bag), false
	}

	var payload TokenPayload
	ok, err := cache.Get(file.Hash, &payload)
	if err == nil && ok && payload.Schema == tokenCacheSchemaVersion && payload.coversContent(file.Content) {
		return cook(file, payload.rawTokens(), sess, bag), true
	}

	tokens = TokenizeFile(file, sess, bag)
	// A failed write only costs the next run a rescan.
	_ = cache.Put(file.Hash, newTokenPayload(file.Path, tokens))
	return tokens, false
}
