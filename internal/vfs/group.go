package vfs

import "sort"

// Group partitions files by directory and returns the display order of
// directories plus the files under each one. RootDir always sorts first;
// every other directory follows in byte-wise lexicographic order, so
// identical input always yields identical output and the file browser never
// reshuffles between repaints. Files keep their synthesis order within a
// directory.
func Group(files []*File) ([]string, map[string][]*File) {
	byDir := make(map[string][]*File, len(files))
	var dirs []string

	for _, f := range files {
		d := f.Dir()
		if _, ok := byDir[d]; !ok {
			dirs = append(dirs, d)
		}
		byDir[d] = append(byDir[d], f)
	}

	sort.Slice(dirs, func(i, j int) bool {
		if dirs[i] == RootDir {
			return true
		}
		if dirs[j] == RootDir {
			return false
		}
		return dirs[i] < dirs[j]
	})

	return dirs, byDir
}
