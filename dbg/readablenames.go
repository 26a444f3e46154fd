package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually tracing. This is helpful for telling vertices apart in a long
// event trace, where bare indices all blur together.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name an arbitrary comparable value. Nil pointers, maps and the like are Ø.
func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if v.IsNil() {
			return "Ø"
		}
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Name an input point by index, keeping the index visible. Negative indices
// are the sentinel.
func Index(i int) string {
	if i < 0 {
		return "Ø"
	}
	return fmt.Sprintf("%s#%d", Name(i), i)
}
