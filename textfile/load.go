package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/guiguan/caster"
	"github.com/npillmayer/segtree"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// fragment is a chunk of a file's content, as broadcast by the reader goroutine.
type fragment struct {
	pos  int64  // start position of this fragment within the file
	text string // content of the fragment
	err  error  // I/O error while reading this fragment
	last bool   // no more fragments will follow
}

// textFile represents an OS file which will be loaded as a sequence of values.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a text file of whitespace-separated tokens,
// and converts every token to a value using parse. Values are returned in file
// order. Clients may indicate a recommended fragment length; 0 lets Load use
// a default depending on the size of the file.
//
// If parse fails for a token, Load returns an error wrapping the parse error
// and stating the position of the token.
func Load[V any](name string, fragSize int64, parse func(string) (V, error)) ([]V, error) {
	if parse == nil {
		return nil, segtree.ErrIllegalArguments
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	fragSize = fragmentSize(tf.info.Size(), fragSize)
	ch, ok := tf.cast.Sub(ctx, 4)
	if !ok {
		tf.file.Close()
		return nil, fmt.Errorf("textfile: cannot subscribe to fragments of %s", name)
	}
	go loadAllFragments(tf, fragSize)
	tok := tokenizer[V]{parse: parse}
	complete := false
	for msg := range ch {
		frag := msg.(fragment)
		tracer().Debugf("textfile: fragment @%d of %s, %d bytes", frag.pos, name, len(frag.text))
		if frag.err != nil {
			tok.fail(frag.err)
		} else {
			tok.consume(frag.text)
		}
		if frag.last {
			complete = true
			break
		}
	}
	if !complete {
		tok.fail(fmt.Errorf("textfile: loading of %s stopped before end of file", name))
	}
	tok.flush()
	if tok.err != nil {
		return nil, tok.err
	}
	tracer().Infof("textfile: loaded %d values from %s", len(tok.values), name)
	return tok.values, nil
}

// LoadTree loads the values of a text file (see Load) and builds a tree
// from them.
func LoadTree[V, D any](cfg segtree.Config[V, D], name string, fragSize int64,
	parse func(string) (V, error)) (*segtree.Tree[V, D], error) {
	//
	values, err := Load(name, fragSize, parse)
	if err != nil {
		return nil, err
	}
	return segtree.FromSlice(cfg, values)
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return max(1, min(fragSize, size))
	}
	switch {
	case size < 64:
		fragSize = size
	case size < 1024:
		fragSize = 64
	case size < tenKb:
		fragSize = 256
	case size < hundredKb:
		fragSize = 512
	case size < oneMb:
		fragSize = twoKb
	default:
		fragSize = sixKb
	}
	return max(1, fragSize)
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments reads the file front to back and publishes every fragment.
// Reading stops at the first I/O error. The final message is flagged as last,
// then the broadcaster is closed.
func loadAllFragments(tf *textFile, fragSize int64) {
	defer tf.cast.Close()
	defer tf.file.Close()
	size := tf.info.Size()
	if size == 0 {
		tf.cast.Pub(fragment{last: true})
		return
	}
	for pos := int64(0); pos < size; pos += fragSize {
		length := min(fragSize, size-pos)
		buf := make([]byte, length)
		frag := fragment{pos: pos, last: pos+length >= size}
		cnt, err := tf.file.ReadAt(buf, pos)
		if err != nil && !(errors.Is(err, io.EOF) && int64(cnt) == length) {
			frag.err = fmt.Errorf("textfile: error loading fragment @%d of %s: %w", pos, tf.path, err)
			frag.last = true
		} else {
			frag.text = string(buf)
		}
		if !tf.cast.Pub(frag) || frag.last {
			return
		}
	}
}

// --- Tokenizing ------------------------------------------------------------

// tokenizer splits fragments into whitespace-separated tokens and parses them.
// A token may straddle fragment boundaries: an unterminated token at the end
// of a fragment is carried over to the next one.
type tokenizer[V any] struct {
	parse  func(string) (V, error)
	carry  string
	values []V
	err    error
}

func (tok *tokenizer[V]) consume(text string) {
	if tok.err != nil {
		return
	}
	data := tok.carry + text
	tok.carry = ""
	fields := strings.FieldsFunc(data, unicode.IsSpace)
	if n := len(fields); n > 0 && strings.HasSuffix(data, fields[n-1]) {
		tok.carry = fields[n-1]
		fields = fields[:n-1]
	}
	tok.emit(fields...)
}

func (tok *tokenizer[V]) flush() {
	if tok.carry != "" {
		tok.emit(tok.carry)
		tok.carry = ""
	}
}

func (tok *tokenizer[V]) emit(tokens ...string) {
	for _, t := range tokens {
		if tok.err != nil {
			return
		}
		v, err := tok.parse(t)
		if err != nil {
			tok.err = fmt.Errorf("textfile: token %d (%q): %w", len(tok.values), t, err)
			return
		}
		tok.values = append(tok.values, v)
	}
}

func (tok *tokenizer[V]) fail(err error) {
	if tok.err == nil {
		tok.err = err
	}
	tok.carry = ""
}
