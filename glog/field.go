package glog

import (
	"fmt"

	"go.uber.org/zap"
)

// Field constructors used across the module, thin aliases of zap's.

func String(key, val string) Field { return zap.String(key, val) }
func Strings(key string, ss []string) Field { return zap.Strings(key, ss) }
func Int(key string, val int) Field { return zap.Int(key, val) }
func Int64(key string, val int64) Field { return zap.Int64(key, val) }
func Bool(key string, val bool) Field { return zap.Bool(key, val) }
func Float64(key string, val float64) Field { return zap.Float64(key, val) }
func Float64s(key string, nums []float64) Field { return zap.Float64s(key, nums) }
func Stringer(key string, val fmt.Stringer) Field { return zap.Stringer(key, val) }

// Any falls back to reflection for types without a dedicated constructor.
func Any(key string, val interface{}) Field { return zap.Any(key, val) }

// Err stores err.Error() under "error".
func Err(err error) Field { return zap.Error(err) }

func NamedError(key string, err error) Field { return zap.NamedError(key, err) }

func Stack(key string) Field { return zap.Stack(key) }
