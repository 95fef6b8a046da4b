// Package install writes, inspects and removes the wrapper scripts that
// git runs as hooks.
//
// A wrapper is a short sh script that re-invokes git-smee with the resolved
// configuration path, the hook name and whatever arguments git passed. Every
// wrapper carries [Marker] on its own line. A file at a hook location that
// lacks it belongs to the user and is never changed without force.
//
// Script content depends only on the configuration path and the hook name,
// so installing twice produces byte-identical files and the second run
// reports every hook as unchanged.
package install
