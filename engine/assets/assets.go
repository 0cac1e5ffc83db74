package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/lovely/engine/assets/loaders"
	"github.com/spaghettifunk/lovely/engine/core"
	"github.com/spaghettifunk/lovely/engine/renderer/metadata"
)

var ErrClosed = errors.New("asset manager already closed")

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

/**
 * @brief A file in the asset directory was created, written or removed.
 * Path is relative to the asset directory, with forward slashes.
 */
type AssetEvent struct {
	Path    string
	Type    metadata.ResourceType
	Removed bool
}

/**
 * @brief Indexes the asset directory, loads assets through the registered
 * loaders and watches the directory tree for changes.
 */
type AssetManager struct {
	baseDir string
	assets  map[string]AssetInfo
	loaders map[metadata.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	wg       sync.WaitGroup
	fsnotify *fsnotify.Watcher
	isClosed bool
	started  bool
	events   chan AssetEvent
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[metadata.ResourceType]Loader),
		fsnotify: fsWatch,
		events:   make(chan AssetEvent, 64),
		done:     make(chan struct{}),
	}, nil
}

func (am *AssetManager) Initialize(assetsDir string) error {
	abs, err := filepath.Abs(assetsDir)
	if err != nil {
		return err
	}
	am.baseDir = abs

	// Register loaders
	am.registerLoader(metadata.ResourceTypeShader, &loaders.ShaderLoader{})
	am.registerLoader(metadata.ResourceTypeImage, &loaders.ImageLoader{})
	am.registerLoader(metadata.ResourceTypeMaterial, &loaders.MaterialLoader{})

	if err := am.addRecursive(am.baseDir); err != nil {
		return err
	}

	am.started = true
	am.wg.Add(1)
	go am.start()

	core.LogInfo("asset manager watching %s, %d assets indexed", am.baseDir, am.Count())
	return nil
}

// Close stops watching and closes the Events channel.
func (am *AssetManager) Close() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return ErrClosed
	}
	am.isClosed = true
	am.mutex.Unlock()

	close(am.done)
	if !am.started {
		close(am.events)
		return am.fsnotify.Close()
	}
	am.wg.Wait()
	return nil
}

// Events delivers asset changes. Events are dropped while the buffer is full.
func (am *AssetManager) Events() <-chan AssetEvent {
	return am.events
}

// AddRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return ErrClosed
	}
	return am.watchRecursive(name)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

/**
 * @brief Returns the path, relative to the asset directory, an asset of the
 * given type and name lives at: images under textures/, shaders under
 * shaders/ (by their vertex source) and materials under materials/.
 */
func AssetPath(name string, resourceType metadata.ResourceType) (string, error) {
	switch resourceType {
	case metadata.ResourceTypeImage:
		return "textures/" + name, nil
	case metadata.ResourceTypeShader:
		return "shaders/" + strings.TrimSuffix(name, ".vs") + ".vs", nil
	case metadata.ResourceTypeMaterial:
		if filepath.Ext(name) == "" {
			name += ".toml"
		}
		return "materials/" + name, nil
	}
	return "", fmt.Errorf("unknown resource type %d", resourceType)
}

// Load an asset using the appropriate loader
func (am *AssetManager) LoadAsset(name string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	path, err := AssetPath(name, resourceType)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	asset, exists := am.assets[path]
	if exists {
		asset.LastLoaded = time.Now()
		am.assets[path] = asset
	}
	am.mutex.Unlock()
	if !exists {
		return nil, fmt.Errorf("asset not found: %s", path)
	}

	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %s", asset.Type)
	}
	core.LogDebug("loading %s asset %s", asset.Type, path)
	return loader.Load(filepath.Join(am.baseDir, filepath.FromSlash(path)), resourceType, params)
}

func (am *AssetManager) UnloadAsset(asset *metadata.Resource) error {
	return nil
}

// Lookup returns the index entry of path, relative to the asset directory.
func (am *AssetManager) Lookup(path string) (AssetInfo, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[path]
	return info, ok
}

func (am *AssetManager) Count() int {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return len(am.assets)
}

func (am *AssetManager) start() {
	defer am.wg.Done()
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := am.watchRecursive(e.Name); err != nil {
						core.LogError(err.Error())
					}
				}
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if info, ok := am.handleFileEvent(e.Name); ok {
					am.emit(AssetEvent{Path: info.Path, Type: info.Type})
				}
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if info, ok := am.removeAsset(e.Name); ok {
					am.emit(AssetEvent{Path: info.Path, Type: info.Type, Removed: true})
				}
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-am.done:
			am.fsnotify.Close()
			close(am.events)
			return
		}
	}
}

func (am *AssetManager) emit(e AssetEvent) {
	select {
	case am.events <- e:
	default:
		core.LogWarn("asset event queue full, dropping change of %s", e.Path)
	}
}

// watchRecursive adds all directories under the given one to the watch list
// and indexes every file found.
func (am *AssetManager) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

func (am *AssetManager) relative(path string) (string, bool) {
	rel, err := filepath.Rel(am.baseDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) (AssetInfo, bool) {
	rel, ok := am.relative(path)
	if !ok {
		return AssetInfo{}, false
	}
	assetType := determineAssetType(rel)
	if assetType == metadata.ResourceTypeNone {
		return AssetInfo{}, false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()

	info := AssetInfo{
		Path:       rel,
		Type:       assetType,
		LastLoaded: am.assets[rel].LastLoaded,
	}
	am.assets[rel] = info
	return info, true
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) (AssetInfo, bool) {
	rel, ok := am.relative(path)
	if !ok {
		return AssetInfo{}, false
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()

	info, ok := am.assets[rel]
	delete(am.assets, rel)
	return info, ok
}

func determineAssetType(path string) metadata.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vs", ".fs":
		return metadata.ResourceTypeShader
	case ".png", ".jpg", ".jpeg", ".bmp", ".webp":
		return metadata.ResourceTypeImage
	case ".toml":
		return metadata.ResourceTypeMaterial
	default:
		return metadata.ResourceTypeNone
	}
}
