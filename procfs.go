package startwatch

import (
	"bytes"
	"errors"
	"strconv"
)

// Field index of the process start time in /proc/self/stat, counting from
// the process state that follows the parenthesised comm field. The kernel
// documents start time as field 22 overall: pid (1) and comm (2) come
// before the state, so 22 - 3 = 19 fields after it.
const statStartTimeField = 19

// parseStartTicks decodes the process start time, in scheduler ticks since
// kernel boot, from the contents of /proc/self/stat. The comm field can
// contain spaces and parentheses, so scanning starts after the last ')'.
func parseStartTicks(data []byte) (uint64, error) {
	end := bytes.LastIndexByte(data, ')')
	if end < 0 {
		return 0, errors.New("no comm field")
	}
	fields := bytes.Fields(data[end+1:])
	if len(fields) <= statStartTimeField {
		return 0, errors.New("unexpected field count")
	}
	ticks, err := strconv.ParseUint(string(fields[statStartTimeField]), 10, 64)
	if err != nil {
		return 0, errors.New("start time field is not an integer")
	}
	return ticks, nil
}

// parseUptimeSeconds decodes total kernel uptime, in seconds, from the
// contents of /proc/uptime. Only the first field matters; the second is
// aggregate idle time.
func parseUptimeSeconds(data []byte) (float64, error) {
	fields := bytes.Fields(data)
	if len(fields) == 0 {
		return 0, errors.New("empty uptime record")
	}
	uptime, err := strconv.ParseFloat(string(fields[0]), 64)
	if err != nil {
		return 0, errors.New("uptime field is not a number")
	}
	return uptime, nil
}
