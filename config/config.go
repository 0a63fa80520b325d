// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads the machine configuration from a Starlark file.
//
// A configuration file assigns any of the following globals:
//
//	register_base = 0xff00   # register page
//	stack_base    = 0xfe00   # call stack page
//	screen_base   = 0x0000   # screen memory
//	start         = 0x0800   # initial PC
//	max_ticks     = 64 * KiB # cycle budget, 0 for none
//	boot          = "MOVW PC, #$0000"  # bootstrap program source
//
// Globals starting with an underscore are ignored.
package config

import (
	"fmt"
	"iter"
	"maps"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tricolore/cpu"
	"github.com/ezrec/tricolore/internal"
	"github.com/ezrec/tricolore/io"
)

// Config is the machine layout and run limits.
type Config struct {
	RegisterBase uint16
	StackBase    uint16
	ScreenBase   uint16
	Start        uint16
	MaxTicks     int    // Zero for no limit.
	Boot         string // Bootstrap assembly source. Empty for the built-in bootstrap.
}

// Default returns the default configuration.
func Default() (cfg *Config) {
	cfg = &Config{
		RegisterBase: cpu.ARENA_REGISTERS,
		StackBase:    cpu.ARENA_STACK,
		ScreenBase:   cpu.ARENA_SCREEN,
		Start:        cpu.ARENA_START,
	}
	return
}

var predeclared = starlark.StringDict{
	"KiB": starlark.MakeInt(1024),
}

// Load executes a configuration file, and applies it over the defaults.
func Load(filename string) (cfg *Config, err error) {
	return Parse(filename, nil)
}

// Parse executes configuration source. If src is nil, filename is read.
func Parse(filename string, src any) (cfg *Config, err error) {
	defer func() {
		if err != nil {
			cfg = nil
		}
	}()

	thread := &starlark.Thread{Name: "config"}
	opts := &syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	cfg = Default()

	uint16s := map[string](*uint16){
		"register_base": &cfg.RegisterBase,
		"stack_base":    &cfg.StackBase,
		"screen_base":   &cfg.ScreenBase,
		"start":         &cfg.Start,
	}

	for _, key := range globals.Keys() {
		if strings.HasPrefix(key, "_") {
			continue
		}
		value := globals[key]

		switch key {
		case "register_base", "stack_base", "screen_base", "start":
			var v int64
			v, err = asInt(key, value)
			if err != nil {
				return
			}
			if v < 0 || v > 0xffff {
				err = ErrSetting{Key: key, Err: ErrConfigValue}
				return
			}
			*uint16s[key] = uint16(v)
		case "max_ticks":
			var v int64
			v, err = asInt(key, value)
			if err != nil {
				return
			}
			if v < 0 {
				err = ErrSetting{Key: key, Err: ErrConfigValue}
				return
			}
			cfg.MaxTicks = int(v)
		case "boot":
			str, ok := starlark.AsString(value)
			if !ok {
				err = ErrSetting{Key: key, Err: ErrConfigType}
				return
			}
			cfg.Boot = str
		default:
			err = ErrSetting{Key: key, Err: ErrConfigKey}
			return
		}
	}

	err = cfg.Validate()

	return
}

// asInt converts a Starlark integer.
func asInt(key string, value starlark.Value) (v int64, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrSetting{Key: key, Err: ErrConfigType}
		return
	}
	v, ok = st_int.Int64()
	if !ok {
		err = ErrSetting{Key: key, Err: ErrConfigValue}
		return
	}
	return
}

// region is a span of memory.
type region struct {
	name string
	base int
	size int
}

// Validate checks that the regions fit in memory and do not overlap.
func (cfg *Config) Validate() (err error) {
	regions := []region{
		{"screen_base", int(cfg.ScreenBase), io.SCREEN_SIZE},
		{"stack_base", int(cfg.StackBase), 0x100},
		{"register_base", int(cfg.RegisterBase), cpu.ARENA_REGISTER_SIZE},
		{"start", int(cfg.Start), cpu.INSTRUCTION_SIZE},
	}

	for n, a := range regions {
		if a.base+a.size > cpu.MEMORY_SIZE {
			err = ErrSetting{Key: a.name, Err: ErrConfigValue}
			return
		}
		for _, b := range regions[n+1:] {
			if a.base < b.base+b.size && b.base < a.base+a.size {
				err = ErrSetting{Key: b.name, Err: ErrRegionClash(a.name)}
				return
			}
		}
	}

	if cfg.Start == 0 {
		err = ErrSetting{Key: "start", Err: ErrConfigValue}
		return
	}

	return
}

// Defines returns the assembler equates for the configured regions, in name order.
func (cfg *Config) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Sorted(maps.All(map[string]string{
		"SCREEN":    fmt.Sprintf("$%04X", cfg.ScreenBase),
		"START":     fmt.Sprintf("$%04X", cfg.Start),
		"STACK":     fmt.Sprintf("$%04X", cfg.StackBase),
		"REGISTERS": fmt.Sprintf("$%04X", cfg.RegisterBase),
	}))
}
