// Package resolve turns field schemas into selectable options and converts
// between stored ids and their "id — name" display labels.
//
// Resolution degrades rather than fails: empty referenced collections
// produce only the unset option, dangling references fall back to the unset
// index, and malformed display strings map to the empty id.
package resolve
