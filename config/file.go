package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// overrides maps the tunable config sections onto their package globals, so
// unmarshalling fills only the keys a file actually provides.
type overrides struct {
	Runner     *RunnerConfig     `yaml:"runner"`
	Player     *PlayerConfig     `yaml:"player"`
	Obstacle   *ObstacleConfig   `yaml:"obstacle"`
	Projectile *ProjectileConfig `yaml:"projectile"`
	Collision  *CollisionConfig  `yaml:"collision"`
}

// LoadFile applies a YAML tuning file on top of the built-in defaults.
// Missing sections and keys keep their current values.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	o := overrides{
		Runner:     &Runner,
		Player:     &Player,
		Obstacle:   &Obstacle,
		Projectile: &Projectile,
		Collision:  &Collision,
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return nil
}

// Watcher hot-reloads a tuning file whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	closeCh chan struct{}
	once    sync.Once
}

// WatchFile reloads path on every write, calling onReload after a successful
// load. Reload races with the game loop are acceptable: this is a debug-only
// facility behind the -watch flag.
func WatchFile(path string, onReload func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors often replace the file on save.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		path:    path,
		closeCh: make(chan struct{}),
	}
	go w.run(onReload)
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run(onReload func()) {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !sameFile(event.Name, w.path) {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			if err := LoadFile(w.path); err != nil {
				log.Printf("config: reload failed: %v", err)
				continue
			}
			log.Printf("config: reloaded %s", w.path)
			if onReload != nil {
				onReload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config: watch error: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

func sameFile(a, b string) bool {
	return strings.EqualFold(filepath.Clean(a), filepath.Clean(b))
}
