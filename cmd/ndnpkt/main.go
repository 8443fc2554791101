/* go-ndn - Go Named Data Networking packet library
 *
 * Copyright (C) 2021-2022 The go-ndn Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

// Command ndnpkt decodes and converts NDN packets in the NDN-TLV and legacy
// Binary XML wire formats.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/peetonn/go-ndn/core"
	"github.com/peetonn/go-ndn/ndn"
	"github.com/peetonn/go-ndn/ndn/tlv"
)

var flagConfig string
var flagLogLevel string
var flagFormat string
var flagFile string
var flagTo string

var cmdRoot = &cobra.Command{
	Use:     "ndnpkt",
	Short:   "NDN packet inspection tool",
	Version: core.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagConfig != "" {
			if err := core.LoadConfig(flagConfig); err != nil {
				return err
			}
		}
		core.InitializeLogger(core.GetConfigStringDefault("core.log_level", flagLogLevel))
		return nil
	},
}

var cmdDecode = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decode a packet and print its fields",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readPacket(args)
		if err != nil {
			return err
		}
		wireFormat, err := pickFormat(input)
		if err != nil {
			return err
		}
		return dumpPacket(input, wireFormat)
	},
}

var cmdConvert = &cobra.Command{
	Use:   "convert [hex]",
	Short: "Re-encode a packet in the wire format given by --to",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readPacket(args)
		if err != nil {
			return err
		}
		fromFormat, err := pickFormat(input)
		if err != nil {
			return err
		}

		var toFormat ndn.WireFormat
		switch flagTo {
		case "tlv":
			toFormat = ndn.NewTlvWireFormat()
		case "binaryxml":
			toFormat = ndn.NewBinaryXmlWireFormat()
		default:
			return errors.New("unknown target format " + flagTo)
		}
		return convertPacket(input, fromFormat, toFormat)
	},
}

func init() {
	cmdRoot.PersistentFlags().StringVar(&flagConfig, "config", "", "TOML configuration file")
	cmdRoot.PersistentFlags().StringVar(&flagLogLevel, "log-level", "INFO", "log level")
	cmdRoot.PersistentFlags().StringVar(&flagFile, "file", "", "read the packet from a file instead of the command line")
	cmdRoot.PersistentFlags().StringVar(&flagFormat, "format", "auto", "wire format of the input: tlv, binaryxml, or auto")
	cmdConvert.Flags().StringVar(&flagTo, "to", "tlv", "target wire format: tlv or binaryxml")
	cmdRoot.AddCommand(cmdDecode)
	cmdRoot.AddCommand(cmdConvert)
}

func readPacket(args []string) ([]byte, error) {
	if flagFile != "" {
		return os.ReadFile(flagFile)
	}
	if len(args) == 0 {
		return nil, errors.New("no packet given: pass hex bytes or --file")
	}
	return hex.DecodeString(strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' {
			return -1
		}
		return r
	}, args[0]))
}

func pickFormat(input []byte) (ndn.WireFormat, error) {
	switch flagFormat {
	case "tlv":
		return ndn.NewTlvWireFormat(), nil
	case "binaryxml":
		return ndn.NewBinaryXmlWireFormat(), nil
	case "auto":
		if len(input) > 0 && (input[0] == tlv.Interest || input[0] == tlv.Data) {
			return ndn.NewTlvWireFormat(), nil
		}
		return ndn.NewBinaryXmlWireFormat(), nil
	default:
		return nil, errors.New("unknown format " + flagFormat)
	}
}

// decodeAny tries the packet types in turn and returns whichever decodes.
func decodeAny(input []byte, wireFormat ndn.WireFormat) (*ndn.Interest, *ndn.Data, error) {
	interest := ndn.NewInterest()
	if err := interest.WireDecode(input, wireFormat); err == nil {
		return interest, nil, nil
	}

	data := ndn.NewData()
	if err := data.WireDecode(input, wireFormat); err != nil {
		return nil, nil, err
	}
	return nil, data, nil
}

func dumpPacket(input []byte, wireFormat ndn.WireFormat) error {
	interest, data, err := decodeAny(input, wireFormat)
	if err != nil {
		core.LogError("ndnpkt", "Unable to decode packet: "+err.Error())
		return err
	}

	if interest != nil {
		fmt.Println("Interest:", interest.ToUri())
		if interest.MustBeFresh() {
			fmt.Println("  MustBeFresh: true")
		}
		return nil
	}

	fmt.Println("Data:", data.Name().ToUri())
	if data.MetaInfo().FreshnessPeriod() >= 0 {
		fmt.Printf("  FreshnessPeriod: %.0f ms\n", data.MetaInfo().FreshnessPeriod())
	}
	if finalBlockID := data.MetaInfo().FinalBlockID(); finalBlockID != nil {
		fmt.Println("  FinalBlockId:", finalBlockID.String())
	}
	fmt.Printf("  Content: %d bytes\n", data.Content().Size())
	fmt.Println("  SignatureType:", int(data.Signature().Type()))

	encoding := data.DefaultWireEncoding()
	if !encoding.IsNull() {
		fmt.Printf("  SignedPortion: [%d, %d)\n", encoding.SignedBegin(), encoding.SignedEnd())
	}
	return nil
}

func convertPacket(input []byte, fromFormat ndn.WireFormat, toFormat ndn.WireFormat) error {
	interest, data, err := decodeAny(input, fromFormat)
	if err != nil {
		core.LogError("ndnpkt", "Unable to decode packet: "+err.Error())
		return err
	}

	var encoding []byte
	if interest != nil {
		out, err := interest.WireEncode(toFormat)
		if err != nil {
			return err
		}
		encoding = out.Bytes()
	} else {
		out, err := data.WireEncode(toFormat)
		if err != nil {
			return err
		}
		encoding = out.Bytes()
	}

	fmt.Println(hex.EncodeToString(encoding))
	return nil
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}
