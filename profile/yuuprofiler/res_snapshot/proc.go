package res_snapshot

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

const defaultHz = 100

var pageSize = int64(os.Getpagesize())

var (
	tickOnce  sync.Once
	usPerTick int64
)

// readRss reads resident set size from /proc (field 2 of statm is
// resident pages). current only linux is supported; elsewhere the file
// is absent and rss reads as zero.
func readRss() int64 {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/statm", os.Getpid()))
	if err != nil {
		return 0
	}
	s := bytes.Fields(data)
	if len(s) < 2 {
		return 0
	}
	res, err := strconv.ParseInt(string(s[1]), 10, 64)
	if err != nil {
		return 0
	}
	return res * pageSize
}

// readCPUTimes reads utime/stime (fields 14 and 15 of /proc/<pid>/stat,
// in clock ticks) and scales them to microseconds.
func readCPUTimes() (user int64, system int64) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", os.Getpid()))
	if err != nil {
		return 0, 0
	}
	utime, stime := parseStatTicks(data)
	return utime * microsPerTick(), stime * microsPerTick()
}

// parseStatTicks extracts utime/stime from a stat line. The comm field
// may itself contain spaces and parentheses, so fields are counted from
// after its closing paren: utime and stime land at offsets 11 and 12.
func parseStatTicks(data []byte) (utime int64, stime int64) {
	i := bytes.LastIndexByte(data, ')')
	if i < 0 {
		return 0, 0
	}
	s := bytes.Fields(data[i+1:])
	if len(s) < 13 {
		return 0, 0
	}
	utime, _ = strconv.ParseInt(string(s[11]), 10, 64)
	stime, _ = strconv.ParseInt(string(s[12]), 10, 64)
	return utime, stime
}

func microsPerTick() int64 {
	tickOnce.Do(func() {
		usPerTick = 1e6 / getHz()
	})
	return usPerTick
}

func getHz() (hz int64) {
	clkTck, err := exec.Command("getconf", "CLK_TCK").Output()
	if err != nil {
		return defaultHz
	}
	if hz, err := strconv.ParseInt(strings.Trim(string(clkTck), "\n"), 10, 64); err == nil && hz != 0 {
		return hz
	}
	return defaultHz
}
