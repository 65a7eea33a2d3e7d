package main

import (
	"fmt"
	"net"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/tamirms/ouigen"
)

func runLookup(v *viper.Viper, addr string) error {
	if err := loadConfig(v); err != nil {
		return err
	}
	if err := setupLogging(v); err != nil {
		return err
	}

	hw, err := net.ParseMAC(addr)
	if err != nil {
		return fmt.Errorf("parse MAC address: %w", err)
	}
	if len(hw) != 6 {
		return fmt.Errorf("parse MAC address: %q is not a 6-byte address", addr)
	}
	var mac [6]byte
	copy(mac[:], hw)

	input := v.GetString("input")
	if input == "" {
		input = defaultInput
	}
	records, err := ouigen.ReadFile(input)
	if err != nil {
		return err
	}
	table, err := ouigen.Build(records)
	if err != nil {
		return err
	}

	if ouigen.IsLikelyRandomized(mac) {
		color.Yellow("%s has the locally-administered bit set; it is likely randomized and any vendor answer is unreliable", hw)
	}
	fmt.Printf("%s => %s\n", hw, table.Lookup(mac))
	return nil
}
