package core

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
)

//go:embed assets
var assets embed.FS

type embedFileSystem struct {
	http.FileSystem
}

func (e embedFileSystem) Exists(prefix string, path string) bool {
	p := strings.TrimPrefix(path, prefix)
	if len(p) == len(path) || p == "" || p == "/" {
		return false
	}
	f, err := e.Open(p)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func assetFileSystem() static.ServeFileSystem {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return embedFileSystem{http.FS(sub)}
}
