package executor

import "strconv"

const (
	ResultOK   = "ok"
	ResultNull = "null"
)

func formatResult(v int64, found bool) string {
	if !found {
		return ResultNull
	}
	return strconv.FormatInt(v, 10)
}
