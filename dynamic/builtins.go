package dynamic

import "undergo/objutil"

// op adapts an implementation taking parsed arguments to a Func.
func op(name string, impl func(a arguments) (any, error)) Func {
	return func(args ...any) (any, error) {
		return impl(arguments{fn: name, values: args})
	}
}

// check adapts a one-argument type test.
func check(test func(any) bool) func(arguments) (any, error) {
	return func(a arguments) (any, error) {
		v, err := a.required(0)
		if err != nil {
			return nil, err
		}
		return test(v), nil
	}
}

func (l *Library) builtins() map[string]Func {
	table := map[string]func(arguments) (any, error){
		// Collections
		"each":     each,
		"map":      mapValues,
		"reduce":   reduce,
		"sum":      sum,
		"filter":   filter,
		"reject":   reject,
		"find":     find,
		"where":    where,
		"pluck":    pluck,
		"contains": contains,
		"times":    times,

		// Arrays
		"first":         first,
		"last":          last,
		"flatten":       flatten,
		"unique":        unique,
		"union":         union,
		"without":       without,
		"range":         rangeValues,
		"arrayToObject": arrayToObject,
		"chunk":         chunk,

		// Functions
		"partialApplication": partialApplication,
		"bind":               bind,
		"throttle":           l.throttle,
		"once":               once,

		// Objects
		"keys":        keys,
		"values":      objectValues,
		"pairs":       pairs,
		"extend":      extend,
		"pick":        pick,
		"omit":        omit,
		"addDefaults": addDefaults,
		"hasKey":      hasKey,
		"isEmpty":     check(objutil.IsEmpty),
		"isFunction":  check(objutil.IsFunction),
		"isString":    check(objutil.IsString),
		"isBoolean":   check(objutil.IsBoolean),
		"isDate":      check(objutil.IsDate),
		"isUndefined": check(objutil.IsUndefined),
		"isArray":     check(objutil.IsSequence),
		"random":      l.random,
		"toNumber":    toNumber,
	}

	funcs := make(map[string]Func, len(table))
	for name, impl := range table {
		funcs[name] = op(name, impl)
	}
	return funcs
}
