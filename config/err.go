package config

import (
	"errors"

	"github.com/ezrec/tricolore/translate"
)

var f = translate.From

var (
	ErrConfigKey   = errors.New(f("unknown setting"))
	ErrConfigValue = errors.New(f("invalid setting"))
	ErrConfigType  = errors.New(f("wrong setting type"))
	ErrConfigClash = errors.New(f("regions overlap"))
)

// ErrSetting identifies the setting at fault.
type ErrSetting struct {
	Key string
	Err error
}

func (err ErrSetting) Error() string {
	return f("%v: %v", err.Key, err.Err)
}

func (err ErrSetting) Unwrap() error {
	return err.Err
}

// ErrRegionClash names the region that the setting overlaps.
type ErrRegionClash string

func (err ErrRegionClash) Error() string {
	return f("%v: %v", ErrConfigClash, string(err))
}

func (err ErrRegionClash) Is(target error) bool {
	return target == ErrConfigClash
}
