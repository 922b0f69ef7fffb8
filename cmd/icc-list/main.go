// go-colord - read and manipulate ICC colour profiles
// Copyright (C) 2026  Richard Hughes <richard@hughsie.com>
//
// This library is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 2.1 of the License, or (at your option) any later version.
//
// This library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public
// License along with this library; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301 USA

// Command icc-list is a read-only ICC profile inspector. By default it
// prints one line per file (version, class and file name); with -v it
// prints the profile header, tag table, description/copyright text, metadata
// dictionary, named colours and any validation warnings found.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"golang.org/x/exp/maps"
	"go.uber.org/zap"

	icc "github.com/hughsie/go-colord"
)

var verbose = flag.Bool("v", false, "verbose output")

func main() {
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "icc-list: setting up logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	status := 0
	for _, fname := range flag.Args() {
		if err := show(fname); err != nil {
			logger.Error("failed to inspect profile", zap.String("file", fname), zap.Error(err))
			status = 1
		}
	}
	os.Exit(status)
}

func show(fname string) error {
	p, err := icc.LoadFile(fname, icc.LoadFlagsNone)
	if err != nil {
		return err
	}

	if !*verbose {
		fmt.Printf("%-8s %-25s %s\n", p.Version, p.Class, fname)
		return nil
	}

	fmt.Printf("Profile: %s\n", fname)
	if p.PreferredCMMType != 0 {
		fmt.Printf("  PreferredCMMType: %s\n", tag(p.PreferredCMMType))
	}
	fmt.Printf("  Version: %s\n", p.Version)
	fmt.Printf("  Class: %s\n", p.Class)
	fmt.Printf("  ColorSpace: %s\n", tag(uint32(p.ColorSpace)))
	fmt.Printf("  PCS: %s\n", tag(uint32(p.PCS)))
	fmt.Printf("  CreationDate: %s\n", p.CreationDate)
	fmt.Printf("  RenderingIntent: %s\n", p.RenderingIntent)
	if p.CheckSum != icc.CheckSumMissing {
		fmt.Printf("  CheckSum: %s\n", p.CheckSum)
	}

	if desc, err := p.Description(""); err == nil && desc != "" {
		fmt.Printf("  Description: %s\n", desc)
	}
	if cprt, err := p.CopyrightText(""); err == nil && cprt != "" {
		fmt.Printf("  Copyright: %s\n", cprt)
	}

	if p.ColorSpace == icc.RGBSpace {
		fmt.Printf("  White point: %.4f %.4f %.4f (%dK)\n",
			p.White.X, p.White.Y, p.White.Z, p.TemperatureK)
	}

	if p.Metadata.Len() > 0 {
		fmt.Println("  Metadata:")
		for _, k := range p.Metadata.Keys() {
			v, _ := p.Metadata.Get(k)
			fmt.Printf("    %s = %s\n", k, v)
		}
	}

	if len(p.NamedColors) > 0 {
		fmt.Printf("  Named colours: %d\n", len(p.NamedColors))
	}

	if warnings := p.Warnings(); len(warnings) > 0 {
		fmt.Println("  Warnings:")
		for _, w := range warnings {
			fmt.Printf("    %s\n", w)
		}
	}

	fmt.Println("  Tags:")
	tags := maps.Keys(p.TagData)
	slices.Sort(tags)
	for _, t := range tags {
		fmt.Printf("    %s: %d bytes\n", t, len(p.TagData[t]))
	}

	return nil
}

func tag(x uint32) string {
	a := fmt.Sprintf("%08X", x)

	bb := []byte{
		byte(x >> 24),
		byte(x >> 16),
		byte(x >> 8),
		byte(x),
	}
	isASCII := true
	for _, c := range bb {
		if c < 0x20 || c > 0x7E {
			isASCII = false
			break
		}
	}
	if isASCII {
		return fmt.Sprintf("%s %q", a, bb)
	}
	return a
}
