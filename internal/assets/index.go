package assets

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

var coverExts = map[string]int{
	".png":  0,
	".webp": 1,
	".jpg":  2,
	".jpeg": 3,
	".gif":  4,
}

// indexDir maps every cover file under dir to its reference (the base name
// without extension). When two files share a reference the extension earlier
// in coverExts wins, so the result does not depend on walk order.
func indexDir(dir string) (map[string]string, error) {
	var mu sync.Mutex
	files := make(map[string]string)

	conf := &fastwalk.Config{Follow: true}
	err := fastwalk.Walk(conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		rank, ok := coverExts[ext]
		if !ok {
			return nil
		}
		ref := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		mu.Lock()
		defer mu.Unlock()
		if prev, ok := files[ref]; ok {
			if coverExts[strings.ToLower(filepath.Ext(prev))] <= rank {
				return nil
			}
		}
		files[ref] = path
		return nil
	})
	return files, err
}
