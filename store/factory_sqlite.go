// SPDX-License-Identifier: MIT

//go:build sqlite

package store

func newSQLiteStore(path string) (Store, error) {
	return NewSQLiteStore(path), nil
}
