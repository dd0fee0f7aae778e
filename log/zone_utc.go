//go:build !clog_jst

package log

// DefaultZone is the zone used by loggers that are not given one with
// [WithZone]. Build with tag clog_jst to select [ZoneJST] instead.
const DefaultZone = ZoneUTC
