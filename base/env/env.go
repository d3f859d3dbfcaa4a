package env

import (
	"os"
)

// PodName example: chaincv-web-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}
