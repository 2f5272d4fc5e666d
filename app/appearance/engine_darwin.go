//go:build darwin && cgo

package appearance

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework Foundation

#import <Foundation/Foundation.h>
#include <stdlib.h>
#include <string.h>

typedef struct {
	int compiled;
	char *message;
	long number;
	int failed;
} scriptResult;

static scriptResult runAppleScript(const char *src) {
	scriptResult res = {0, NULL, 0, 0};
	@autoreleasepool {
		NSString *source = [NSString stringWithUTF8String:src];
		NSAppleScript *script = source == nil ? nil : [[NSAppleScript alloc] initWithSource:source];
		if (script == nil) {
			return res;
		}
		res.compiled = 1;

		NSDictionary *info = nil;
		[script executeAndReturnError:&info];
		if (info == nil) {
			return res;
		}
		res.failed = 1;
		NSString *msg = info[NSAppleScriptErrorMessage];
		if (msg != nil) {
			res.message = strdup([msg UTF8String]);
		}
		NSNumber *num = info[NSAppleScriptErrorNumber];
		if (num != nil) {
			res.number = [num longValue];
		}
	}
	return res;
}
*/
import "C"

import (
	"strconv"
	"unsafe"
)

// AppleScriptEngine runs scripts with NSAppleScript. Must be called on the main thread.
type AppleScriptEngine struct{}

// NewEngine returns the in-process scripting engine of the platform.
func NewEngine() Engine {
	return AppleScriptEngine{}
}

// Execute compiles and runs source.
func (AppleScriptEngine) Execute(source string) (map[string]string, bool) {
	src := C.CString(source)
	defer C.free(unsafe.Pointer(src))

	res := C.runAppleScript(src)
	if res.compiled == 0 {
		return nil, false
	}
	if res.failed == 0 {
		return nil, true
	}

	info := map[string]string{ErrorNumberKey: strconv.FormatInt(int64(res.number), 10)}
	if res.message != nil {
		info[ErrorMessageKey] = C.GoString(res.message)
		C.free(unsafe.Pointer(res.message))
	}
	return info, true
}
