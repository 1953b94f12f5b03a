//go:build !linux

package fs

import "time"

func birthTime(string) (time.Time, bool) {
	return time.Time{}, false
}
