package web

import (
	"io/fs"
	"net/http"
)

// DistServer serves the regular files under subdir of fsys. Directories,
// the root included, answer 404 rather than a listing or a redirect. An
// unreadable subdir serves 404 for every request.
func DistServer(fsys fs.FS, subdir string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.FileServer(http.FS(filesOnly{sub})).ServeHTTP
}

// filesOnly hides directories so http.FileServer reports them as missing.
type filesOnly struct {
	fs.FS
}

func (f filesOnly) Open(name string) (fs.File, error) {
	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}
