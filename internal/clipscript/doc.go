// Package clipscript turns declarative actions into timeline frame scripts.
//
// Actions are short strings such as "stop" or "goto_and_play intro". A Binder
// parses them, registers the resulting scripts on a movieclip.Timeline, and
// keeps the first error any script hit, since scripts themselves cannot
// return one. A script that is re-entered while it is still running (for
// example a "play" script whose own render fires it again) is skipped.
package clipscript
