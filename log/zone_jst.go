//go:build clog_jst

package log

// DefaultZone is the zone used by loggers that are not given one with
// [WithZone]. Build without tag clog_jst to select [ZoneUTC] instead.
const DefaultZone = ZoneJST
