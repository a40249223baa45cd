// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"log"
)

// Error returns the error status of the Manager, that is the first error
// returned by one of its operations. We return an empty string if there are
// no errors.
func (m *Manager) Error() string {
	if m.error == nil {
		return ""
	}
	return m.error.Error()
}

// Errored returns true if there was an error during a computation.
func (m *Manager) Errored() bool {
	return m.error != nil
}

// seterror wraps err with a description of the failed operation, records it
// if it is the first error of m, and returns it.
func (m *Manager) seterror(err error, format string, a ...interface{}) error {
	res := fmt.Errorf(format+": %w", append(a, err)...)
	if m.error != nil {
		return res
	}
	m.error = res
	if _DEBUG {
		log.Println(res)
	}
	return res
}
