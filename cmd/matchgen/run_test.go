package main

import (
	"bytes"
	"context"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/matchgen/target"
)

const indexOf = `# IndexOf result compared with zero
03: callvirt   System.Int32 System.String::IndexOf(System.Char)
08: stloc.N    V_0
09: ldloc.N    V_0
0A: ldc.i4.0
0B: ble        1F
`

var _ = Describe("run", func() {
	var (
		dir    string
		stdout *bytes.Buffer
		ctx    context.Context
	)

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

		return path
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		stdout = &bytes.Buffer{}
		ctx = context.Background()
	})

	It("should generate from stdin to stdout", func() {
		code, err := run(ctx, options{dialect: "go"}, strings.NewReader(indexOf), stdout)

		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(exitOK))
		Expect(stdout.String()).To(HavePrefix("// 03: callvirt"))
		Expect(stdout.String()).To(ContainSubstring("func DoMatch("))
	})

	It("should generate from a file into a file", func() {
		in := write("indexof.il", indexOf)
		out := filepath.Join(dir, "IndexOf.cs")

		_, err := run(ctx, options{dialect: "csharp", inPath: in, outPath: out}, nil, stdout)
		Expect(err).NotTo(HaveOccurred())

		data, err := os.ReadFile(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("while (false);"))
		Expect(stdout.Len()).To(BeZero())
	})

	It("should keep the old output when generation fails", func() {
		in := write("bad.il", "00: call A*B*C\n")
		out := write("Out.go", "previous")

		_, err := run(ctx, options{dialect: "go", inPath: in, outPath: out}, nil, stdout)
		Expect(errors.Is(err, target.ErrAmbiguousWildcard)).To(BeTrue())
		Expect(err.Error()).To(HavePrefix(in + ":"))

		data, err := os.ReadFile(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("previous"))
	})

	It("should apply a host configuration", func() {
		cfg := write("host.yaml", "func: matchIndexOf\nupper_bound: false\n")

		_, err := run(ctx, options{dialect: "go", configPath: cfg},
			strings.NewReader(indexOf), stdout)

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout.String()).To(ContainSubstring("func matchIndexOf("))
		Expect(stdout.String()).To(ContainSubstring("if index-4 < 0 {"))
	})

	It("should fail on an unknown config field", func() {
		cfg := write("host.yaml", "funcname: x\n")

		_, err := run(ctx, options{dialect: "go", configPath: cfg},
			strings.NewReader(indexOf), stdout)

		Expect(err).To(HaveOccurred())
	})

	It("should print the alias table", func() {
		code, err := run(ctx, options{aliases: true}, nil, stdout)

		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(exitOK))
		Expect(stdout.String()).To(ContainSubstring("CIL aliases"))
		Expect(stdout.String()).To(ContainSubstring("Ble_Un_S"))
	})

	It("should lint instead of generating", func() {
		code, err := run(ctx, options{lint: true}, strings.NewReader(indexOf), stdout)

		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(exitOK))
		Expect(stdout.String()).To(Equal("<stdin>: 5 entries, no lint issues\n"))
	})

	It("should exit with the lint code on lint errors", func() {
		code, err := run(ctx, options{lint: true}, strings.NewReader("00: call *a*b*"), stdout)

		Expect(err).NotTo(HaveOccurred())
		Expect(code).To(Equal(exitLint))
		Expect(stdout.String()).To(ContainSubstring("WILDCARD"))
	})

	It("should require files to watch", func() {
		_, err := run(ctx, options{dialect: "go", watch: true},
			strings.NewReader(indexOf), stdout)

		Expect(err).To(MatchError(errWatchNeedsFiles))
	})

	It("should regenerate when the input changes", func() {
		in := write("watched.il", "00: nop\n")
		out := filepath.Join(dir, "Watched.go")

		watchCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() {
			defer GinkgoRecover()
			_, err := run(watchCtx, options{dialect: "go", inPath: in, outPath: out, watch: true},
				nil, stdout)
			done <- err
		}()

		readOut := func() string {
			data, _ := os.ReadFile(out)
			return string(data)
		}

		Eventually(readOut, 2*time.Second).Should(ContainSubstring("cil.Nop"))

		// Give the watcher time to register before the write.
		time.Sleep(50 * time.Millisecond)
		write("watched.il", "00: ret\n")

		Eventually(readOut, 2*time.Second).Should(ContainSubstring("cil.Ret"))

		cancel()
		Eventually(done, 2*time.Second).Should(Receive(BeNil()))
	})

	DescribeTable("should generate parsable Go for the samples",
		func(sample string) {
			opts := options{
				dialect:    "go",
				configPath: filepath.Join("..", "..", "samples", "rules.yaml"),
				inPath:     filepath.Join("..", "..", "samples", sample),
			}

			_, err := run(ctx, opts, nil, stdout)
			Expect(err).NotTo(HaveOccurred())

			_, err = parser.ParseFile(token.NewFileSet(), sample+".go", stdout.String(), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(stdout.String()).To(ContainSubstring("func (r *indexOfRule) matchIndexOf(index int) bool {"))
			Expect(stdout.String()).To(ContainSubstring("index >= len(r.info.Instructions)"))
		},
		Entry("indexof", "indexof.il"),
		Entry("format", "format.il"),
	)
})
