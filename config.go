// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// configs is used to store the values of different parameters of a Manager
type configs struct {
	varnum     int  // number of variables declared at creation
	nodesize   int  // initial capacity of the node table
	cachesize  int  // initial cache size
	cacheratio int  // ratio (%) between cache size and node table, 0 if size constant
	memoize    bool // whether apply results are cached
}

func makeconfigs() *configs {
	return &configs{
		nodesize:   _DEFAULTNODESIZE,
		cachesize:  _DEFAULTCACHESIZE,
		cacheratio: _DEFAULTCACHERATIO,
		memoize:    true,
	}
}

// Varnum is a configuration option (function). Used as a parameter in New it
// declares num variables, labelled x1 to xnum, when the Manager is created.
func Varnum(num int) func(*configs) {
	return func(c *configs) {
		if num > 0 && int32(num) <= _MAXVAR {
			c.varnum = num
		}
	}
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial capacity for the node table. The table grows during
// computations and is never shrinked.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New it
// sets the initial number of entries in the operation cache. The default value
// is 10 000. See also the Cacheratio config.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}

// Cacheratio is a configuration option (function). Used as a parameter in New
// it sets a "cache ratio" (%) so that the cache can grow each time the node
// table grows. With a cache ratio of r, we have r available entries in the
// cache for every 100 nodes. The value 0 means that the cache size never
// grows. The default is 25.
func Cacheratio(ratio int) func(*configs) {
	return func(c *configs) {
		if ratio >= 0 {
			c.cacheratio = ratio
		}
	}
}

// Memoize is a configuration option (function). Used as a parameter in New it
// enables (the default) or disables the cache of apply results. Without cache,
// subproblems reached through different paths are computed again; results are
// the same but the running time can be exponential in the size of the
// operands.
func Memoize(on bool) func(*configs) {
	return func(c *configs) {
		c.memoize = on
	}
}
