package cmd

import (
	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/log/jst"
	"github.com/ardnew/clog/pkg"
)

// Demo writes a sample session covering every severity.
type Demo struct {
	JST bool `help:"Repeat the session through the UTC+9 set."`
}

// Run executes the demo command.
func (d *Demo) Run() error {
	ver := pkg.Version
	log.Infof("Version: %s", ver)

	dev := "Foo PC"
	log.Warnf("Your device %q is deprecated", dev)

	err := "Operating System is not found"
	log.Errorf("Fatal: %s", err)

	buf := 0x12345678
	log.Debugf("Buffer: 0x%x", buf)

	age := 17
	log.Tracef("Age: %d", age)

	log.Flag()
	log.Flagf("i wake up!")

	if !d.JST {
		return nil
	}

	jst.Infof("Version: %s", ver)
	jst.Warnf("Your device %q is deprecated", dev)
	jst.Errorf("Fatal: %s", err)
	jst.Debugf("Buffer: 0x%x", buf)
	jst.Tracef("Age: %d", age)
	jst.Flag()
	jst.Flagf("i wake up!")

	return nil
}
