// SPDX-License-Identifier: MIT

//go:build !sqlite

package store

func newSQLiteStore(_ string) (Store, error) {
	return nil, ErrSQLiteUnavailable
}
