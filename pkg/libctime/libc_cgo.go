//go:build cgo && unix

package libctime

/*
#include <stdlib.h>
#include <time.h>
#include <locale.h>
#include <langinfo.h>
*/
import "C"

import (
	"math"
	"unsafe"
)

// Native reports whether formatting goes through the C library.
const Native = true

// sentinel is appended to every format so that a zero return from strftime
// can only mean the output did not fit.
const sentinel = "\x01"

func cTzset() {
	C.tzset()
}

func cSetlocale(name string) (string, bool) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	res := C.setlocale(C.LC_ALL, cname)
	if res == nil {
		return "", false
	}
	return C.GoString(res), true
}

func cCodeset() string {
	return C.GoString(C.nl_langinfo(C.nl_item(C.CODESET)))
}

func cFormat(spec string, epoch Epoch, zone Zone, capacity int) ([]byte, error) {
	if epoch > math.MaxInt64 {
		return nil, &TimeConversionError{Epoch: epoch, Zone: zone}
	}
	t := C.time_t(int64(epoch))
	if int64(t) != int64(epoch) {
		return nil, &TimeConversionError{Epoch: epoch, Zone: zone}
	}

	var tm C.struct_tm
	var res *C.struct_tm
	if zone == Local {
		res = C.localtime_r(&t, &tm)
	} else {
		res = C.gmtime_r(&t, &tm)
	}
	if res == nil {
		return nil, &TimeConversionError{Epoch: epoch, Zone: zone}
	}

	cspec := C.CString(spec + sentinel)
	defer C.free(unsafe.Pointer(cspec))

	// capacity bytes of output, the sentinel, and the terminating NUL.
	size := C.size_t(capacity + 2)
	buf := (*C.char)(C.malloc(size))
	defer C.free(unsafe.Pointer(buf))

	n := C.strftime(buf, size, cspec, &tm)
	if n == 0 {
		return nil, &FormatOverflowError{Spec: spec, Capacity: capacity}
	}
	return C.GoBytes(unsafe.Pointer(buf), C.int(n-1)), nil
}
