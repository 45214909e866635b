//go:build unit

package tarball

var SafeJoin = safeJoin
