package date

import (
	"fmt"
	"sync"
	"time"
)

var locationMx sync.RWMutex
var location = time.UTC

func Location() *time.Location {
	locationMx.RLock()
	defer locationMx.RUnlock()
	return location
}

// SetLocation changes the location used for parsing and rendering. An empty name resets to UTC.
func SetLocation(name string) error {
	loc := time.UTC
	if name != "" {
		var err error
		loc, err = time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("load location %q: %w", name, err)
		}
	}
	locationMx.Lock()
	defer locationMx.Unlock()
	location = loc
	return nil
}
