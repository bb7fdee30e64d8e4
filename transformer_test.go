package krutidev

import (
	"io"
	"reflect"
	"testing"

	"golang.org/x/text/transform"
)

// chunkReader yields at most n bytes per Read, forcing the transformer
// through its buffering paths, including reads that split UTF-8 sequences.
type chunkReader struct {
	data []byte
	n    int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := r.n
	if n > len(r.data) {
		n = len(r.data)
	}
	if n > len(p) {
		n = len(p)
	}
	n = copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

func TestTransformerMatchesConvert(t *testing.T) {
	inputs := []string{
		"fdrkc i<+us\nfy[kuk\n",
		"¤ÉÉiÉ +ÉÉè® BÉDªÉÉ cÉä ",
		"fd\nf",
		"Ùd\nΩ",
		"f",
		"ffd",
		"vks vkS vk v\n0123456789\n",
		"",
	}
	for _, in := range inputs {
		want := Convert(in)
		for _, size := range []int{1, 2, 3, 7, 64} {
			tr := Default().Transformer()
			rd := transform.NewReader(&chunkReader{data: []byte(in), n: size}, tr)
			got, err := io.ReadAll(rd)
			if err != nil {
				t.Fatalf("reading %q in %d-byte chunks: %v", in, size, err)
			}
			if string(got) != want.Text {
				t.Errorf("stream of %q in %d-byte chunks should be %q, is %q",
					in, size, want.Text, got)
			}
			if !reflect.DeepEqual(tr.Residuals(), want.Residuals) {
				t.Errorf("stream residuals of %q should be %v, are %v",
					in, want.Residuals, tr.Residuals())
			}
		}
	}
}

func TestTransformString(t *testing.T) {
	in := "fdrkc i<+us\nfy[kuk\n"
	got, _, err := transform.String(Default().Transformer(), in)
	if err != nil {
		t.Fatal(err)
	}
	if want := Convert(in).Text; got != want {
		t.Errorf("transform.String should be %q, is %q", want, got)
	}
}

func TestTransformerShortDst(t *testing.T) {
	tr := Default().Transformer()
	dst := make([]byte, 3)
	nDst, nSrc, err := tr.Transform(dst, []byte("fd\n"), false)
	if err != transform.ErrShortDst {
		t.Fatalf("expected ErrShortDst, got %v", err)
	}
	if nSrc != 3 {
		t.Fatalf("all source bytes should be consumed, nSrc=%d", nSrc)
	}
	collected := append([]byte(nil), dst[:nDst]...)
	for err == transform.ErrShortDst {
		nDst, _, err = tr.Transform(dst, nil, true)
		collected = append(collected, dst[:nDst]...)
	}
	if err != nil {
		t.Fatal(err)
	}
	if string(collected) != "कि\n" {
		t.Errorf("drained output should be कि\\n, is %q", collected)
	}
}

func TestTransformerBuffersUntilLineEnd(t *testing.T) {
	tr := Default().Transformer()
	dst := make([]byte, 64)
	nDst, nSrc, err := tr.Transform(dst, []byte("fd"), false)
	if err != nil || nDst != 0 || nSrc != 2 {
		t.Fatalf("incomplete line should be buffered, got nDst=%d nSrc=%d err=%v", nDst, nSrc, err)
	}
	nDst, _, err = tr.Transform(dst, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if string(dst[:nDst]) != "कि" {
		t.Errorf("EOF flush should yield कि, is %q", dst[:nDst])
	}
}

func TestTransformerReset(t *testing.T) {
	tr := Default().Transformer()
	dst := make([]byte, 64)
	if _, _, err := tr.Transform(dst, []byte("Ùd"), false); err != nil {
		t.Fatal(err)
	}
	tr.Reset()
	nDst, _, err := tr.Transform(dst, []byte("vks"), true)
	if err != nil {
		t.Fatal(err)
	}
	if string(dst[:nDst]) != "ओ" {
		t.Errorf("after Reset the stream should restart cleanly, got %q", dst[:nDst])
	}
	if res := tr.Residuals(); res != nil {
		t.Errorf("Reset should clear residuals, got %v", res)
	}
}
