package metrics

import (
	"fmt"
	"sync"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/labordao/chaincv/base/env"
	"github.com/labordao/chaincv/base/log"
)

const (
	// DdPort is the dogstatsd agent port
	DdPort = 8125
	// buffer 10 metrics before sending to statsd
	bufferMetrics = 10
	ddRate        = 1
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

var (
	mu     sync.RWMutex
	cli    statsCli = &LogClient{}
	ddTags []string
)

// Setup points metrics at the dogstatsd agent on host. An empty host keeps
// metrics in debug logs.
func Setup(host, envName, appName string) {
	mu.Lock()
	defer mu.Unlock()

	ddTags = []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"pod:" + env.PodName(),
		"env:" + envName,
		"app:" + appName,
	}

	if host == "" {
		cli = &LogClient{}
		return
	}

	addr := fmt.Sprintf("%s:%d", host, DdPort)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	c, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, fall back to log client")
		cli = &LogClient{}
		return
	}
	cli = c
}

func client() statsCli {
	mu.RLock()
	defer mu.RUnlock()
	return cli
}

func globalTags() []string {
	mu.RLock()
	defer mu.RUnlock()
	return append([]string{}, ddTags...)
}

func bumpSum(key string, val float64, tags ...string) {
	if err := client().Count(key, int64(val), append(globalTags(), parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

func bumpHistogram(key string, val float64, tags ...string) {
	if err := client().Histogram(key, val, append(globalTags(), parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

func bumpTime(key string, ms float64, tags ...string) {
	if err := client().TimeInMilliseconds(key, ms, append(globalTags(), parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": ms, "func": "BumpTime"}).Error("Bump fail")
	}
}

func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
