// Command pyrtcore is a minimal front-end over the interpreter core.
//
// There is no lexer or compiler here, so this command exercises the core
// the way a host VM would: it registers a handful of hand-built code
// descriptors as native callables, wires them into a fresh environment,
// and drives them from a line-oriented REPL, with the compile step
// dropped since there is no source language here to compile.
package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"pyrtcore/internal/builtins"
	"pyrtcore/internal/callproto"
	"pyrtcore/internal/codecache"
	"pyrtcore/internal/codereg"
	"pyrtcore/internal/debugserver"
	"pyrtcore/internal/env"
	"pyrtcore/internal/rtexc"
	"pyrtcore/internal/rtobjects"
	"pyrtcore/internal/rtvalue"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "--version" || args[0] == "-v") {
		fmt.Println("pyrtcore " + version)
		return
	}
	if len(args) > 0 && (args[0] == "--help" || args[0] == "-h") {
		showUsage()
		return
	}

	registry := codereg.New()
	e := env.New(nil)
	e.Builtins = builtins.Bootstrap(e)
	descs := registerDemoCode(registry, e)

	var dbg *debugserver.Server
	if os.Getenv("PYRTCORE_DEBUGSERVER") != "" {
		dbg = debugserver.New()
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/debug", dbg)
			fmt.Fprintf(os.Stderr, "pyrtcore: debug server session %s on :7777/debug\n", dbg.Session())
			http.ListenAndServe(":7777", mux)
		}()
		go dbg.Run(context.Background())
	}

	if dsn := os.Getenv("PYRTCORE_CODECACHE_DSN"); dsn != "" {
		cache, err := codecache.Open("sqlite", dsn)
		if err != nil {
			fmt.Fprintln(os.Stderr, "pyrtcore: codecache disabled:", err)
		} else {
			defer cache.Close()
			ctx := context.Background()
			for _, desc := range descs {
				if err := cache.Store(ctx, desc); err != nil {
					fmt.Fprintln(os.Stderr, "pyrtcore:", err)
				}
			}
		}
	}

	runREPL(e, dbg)
}

func showUsage() {
	fmt.Println(`pyrtcore - interpreter core REPL

Usage:
  pyrtcore              start the interactive REPL
  pyrtcore --version     print the version
  pyrtcore --help        show this message

Environment:
  PYRTCORE_DEBUGSERVER     set (to anything) to start the websocket debug server on :7777
  PYRTCORE_CODECACHE_DSN   sqlite DSN to persist registered code descriptors across runs`)
}

// registerDemoCode installs a couple of hand-built native code descriptors
// through the registry, then wraps each registered ID into a callable via
// MakeFunctionFromID and binds it in the top-level environment, the same
// two-step a real front-end takes after compiling a unit, minus the
// compile step itself.
func registerDemoCode(registry *codereg.Registry, e *env.Environment) []*codereg.Descriptor {
	fibID := registry.NextID()
	registry.AssignNativeCode(fibID, func(args []rtvalue.Value) rtvalue.Value {
		requireInts(args, 1)
		n := rtvalue.AsSmallInt(args[0])
		a, b := int64(0), int64(1)
		for i := int64(0); i < n; i++ {
			a, b = b, a+b
		}
		return rtvalue.Int(a)
	}, 1, 1)
	e.StoreGlobal("fib", registry.MakeFunctionFromID(fibID, "fib"))

	factorialID := registry.NextID()
	registry.AssignNativeCode(factorialID, func(args []rtvalue.Value) rtvalue.Value {
		requireInts(args, 1)
		n := rtvalue.AsSmallInt(args[0])
		acc := int64(1)
		for i := int64(2); i <= n; i++ {
			acc *= i
		}
		return rtvalue.Int(acc)
	}, 1, 1)
	e.StoreGlobal("factorial", registry.MakeFunctionFromID(factorialID, "factorial"))

	return []*codereg.Descriptor{registry.Get(fibID), registry.Get(factorialID)}
}

func requireInts(args []rtvalue.Value, n int) {
	if len(args) != n {
		rtexc.RaiseTypeError("expected " + strconv.Itoa(n) + " argument(s)")
	}
	for _, a := range args {
		if !rtvalue.IsSmallInt(a) {
			rtexc.RaiseTypeError("expected an int argument")
		}
	}
}

// runREPL reads one line at a time, parses it as either a bare name or a
// single `name(arg, ...)` call against a name already bound in the
// environment, and prints the result via __repl_print__. Literal argument
// forms are limited to integers, quoted strings, and None/True/False; this
// is a demonstration harness, not a parser for a general expression
// language (that belongs to the compiler this core leaves out).
func runREPL(e *env.Environment, dbg *debugserver.Server) {
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		fmt.Println("pyrtcore " + version + " | type 'exit' to quit")
	}

	scanner := bufio.NewScanner(os.Stdin)
	replPrint, _ := e.Builtins.Get("__repl_print__")

	for {
		if interactive {
			fmt.Print(">>> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		evalLine(e, replPrint, dbg, line)
	}
}

func evalLine(e *env.Environment, replPrint rtvalue.Value, dbg *debugserver.Server, line string) {
	defer func() {
		if r := recover(); r != nil {
			exc, ok := rtvalue.Recover(r)
			if !ok {
				fmt.Fprintln(os.Stderr, "pyrtcore: internal error:", r)
				return
			}
			msg := rtobjects.ExceptionMessage(exc)
			kind := "Exception"
			if t := rtvalue.TypeOf(exc); t != nil {
				kind = t.Name
			}
			if dbg != nil {
				dbg.EmitException(kind, msg)
			}
			fmt.Fprintf(os.Stderr, "%s: %s\n", kind, msg)
		}
	}()

	name, argLit, hasCall := splitCall(line)
	var result rtvalue.Value
	if hasCall {
		fn := e.LoadName(name)
		if dbg != nil {
			dbg.EmitCall(name)
		}
		result = callproto.CallN(fn, argLit)
	} else {
		result = e.LoadName(name)
	}

	callproto.Call1(replPrint, result)
}

// splitCall recognizes "name" or "name(a, b, ...)"; arguments are parsed as
// int literals, quoted strings, or None/True/False, and any other token
// raises ValueError.
func splitCall(line string) (name string, args []rtvalue.Value, hasCall bool) {
	open := strings.IndexByte(line, '(')
	if open < 0 || !strings.HasSuffix(line, ")") {
		return line, nil, false
	}
	name = strings.TrimSpace(line[:open])
	inner := strings.TrimSpace(line[open+1 : len(line)-1])
	if inner == "" {
		return name, nil, true
	}
	for _, part := range strings.Split(inner, ",") {
		args = append(args, parseArg(strings.TrimSpace(part)))
	}
	return name, args, true
}

func parseArg(tok string) rtvalue.Value {
	switch tok {
	case "True":
		return rtvalue.True
	case "False":
		return rtvalue.False
	case "None":
		return rtvalue.None
	}
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		return rtobjects.NewString(tok[1 : len(tok)-1])
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return rtvalue.Int(n)
	}
	rtexc.RaiseValueError("cannot parse literal: " + tok)
	panic("unreachable")
}
