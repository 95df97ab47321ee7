package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ludotheque/catalog/media"
)

// AssetServer serves files of one asset type from the media store. It must be
// mounted on a wildcard route; the wildcard is the file name inside the
// asset directory. example usage:
//
//	r.Get("/uploads/*", AssetServer(store, media.AssetTypeCover))
func AssetServer(store *media.LocalStorage, assetType media.AssetType) http.HandlerFunc {
	subDir := store.SubDir(assetType)
	dir, err := store.EnsureDir(assetType)
	if err != nil {
		log.Printf("handlers: Asset directory for '/%s/*' unavailable: %v", subDir, err)
	} else {
		log.Printf("handlers: Serving assets for '/%s/*' from directory: %s", subDir, dir)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "*")
		if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
			http.Error(w, "Invalid asset path", http.StatusBadRequest)
			return
		}

		fullPath, err := store.GetFullPath(path.Join(subDir, name))
		if err != nil {
			http.Error(w, "Forbidden", http.StatusForbidden)
			log.Printf("SECURITY: Attempted asset access outside designated directory: Request='%s': %v", r.URL.Path, err)
			return
		}

		info, err := os.Stat(fullPath)
		if os.IsNotExist(err) || (err == nil && info.IsDir()) {
			http.NotFound(w, r)
			return
		} else if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			log.Printf("handlers: Error stating asset file %s: %v", fullPath, err)
			return
		}

		// names are unique per upload, so a stored file never changes
		cacheDuration := 24 * time.Hour
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(cacheDuration.Seconds())))
		w.Header().Set("Expires", time.Now().Add(cacheDuration).Format(http.TimeFormat))

		http.ServeFile(w, r, fullPath)
	}
}
