// gtpdump decodes a GTPv1-C/GTP' message from a hex string and prints the
// decoded header and information elements as JSON. It is an operator-
// facing entry point alongside the library, not a network endpoint: input
// comes from stdin or a file, never a socket.
package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"gtpv1c/config"
	"gtpv1c/dispatch"
	"gtpv1c/internal/gtplog"
	"gtpv1c/message"
)

var log = gtplog.With("gtpdump")

func main() {
	side := pflag.StringP("side", "s", "", "dispatch side: sgsn or ggsn (default from config)")
	permissive := pflag.BoolP("permissive", "p", false, "decode permissively, recording missing mandatory IEs instead of failing")
	file := pflag.StringP("file", "f", "", "read hex input from file instead of stdin")
	configPath := pflag.StringP("config", "c", "", "path to a YAML config file")
	help := pflag.BoolP("help", "h", false, "display help text")
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}

	opts := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gtpdump: load config: %v\n", err)
			os.Exit(1)
		}
		opts = loaded
	}
	gtplog.SetLevel(opts.LogLevel)

	if *permissive {
		opts.Permissive = true
	}
	if *side != "" {
		opts.DefaultSide = *side
	}

	buf, err := readInput(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gtpdump: %v\n", err)
		os.Exit(1)
	}

	res := dispatchFor(opts.Side(), buf, message.DecodeOptions{Permissive: opts.Permissive})
	log.WithField("status", res.Status.String()).Info("decoded")

	out, err := json.MarshalIndent(render(res), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "gtpdump: marshal result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func dispatchFor(side dispatch.Side, buf []byte, opts message.DecodeOptions) dispatch.Result {
	if side == dispatch.SideGGSN {
		return dispatch.ParseGGSN(buf, opts)
	}
	return dispatch.ParseSGSN(buf, opts)
}

func readInput(path string) ([]byte, error) {
	var raw string
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		raw = string(b)
	} else {
		sc := bufio.NewScanner(os.Stdin)
		sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
		var sb strings.Builder
		for sc.Scan() {
			sb.WriteString(sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = sb.String()
	}

	raw = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			return -1
		}
		return r
	}, raw)

	buf, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode hex input: %w", err)
	}
	return buf, nil
}

type ieView struct {
	Type    uint16      `json:"type"`
	Payload interface{} `json:"payload"`
}

type resultView struct {
	Status   string   `json:"status"`
	MsgType  uint8    `json:"msg_type,omitempty"`
	Name     string   `json:"name,omitempty"`
	Version  uint8    `json:"version,omitempty"`
	TEID     uint32   `json:"teid,omitempty"`
	SeqNum   uint16   `json:"seq_num,omitempty"`
	IEs      []ieView `json:"ies,omitempty"`
	Trailing []ieView `json:"trailing,omitempty"`
	Missing  []string `json:"missing,omitempty"`
}

func render(res dispatch.Result) resultView {
	v := resultView{Status: res.Status.String()}
	if res.Header != nil {
		v.MsgType = res.Header.MsgType
		v.Version = res.Header.Version
		v.TEID = res.Header.TEID
		v.SeqNum = res.Header.SeqNum
	}
	if res.Message != nil {
		v.Name = res.Message.Name
		v.Missing = res.Message.Missing
		for _, item := range res.Message.IEs {
			v.IEs = append(v.IEs, ieView{Type: uint16(item.Type), Payload: item.Payload})
		}
		for _, item := range res.Message.Trailing {
			v.Trailing = append(v.Trailing, ieView{Type: uint16(item.Type), Payload: item.Payload})
		}
	}
	return v
}
