package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/codesnack/codesnack"
	"github.com/codesnack/codesnack/internal/arena"
	"github.com/codesnack/codesnack/internal/content"
	"github.com/codesnack/codesnack/internal/res"
)

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runPDF(args []string, stdout, stderr io.Writer) error {
	var (
		inputFile  string
		outputFile string
		format     string
		markdown   bool
		maxChars   int
		fontSize   float64
		logo       string
		verbose    bool
	)

	fs := newFlagSet("pdf", stderr)
	fs.StringVar(&inputFile, "input", "", "Input text or markdown file path, or a data: URL")
	fs.StringVar(&outputFile, "output", "", "Output file path")
	fs.StringVar(&format, "format", "pdf", "Output format: pdf or txt")
	fs.BoolVar(&markdown, "markdown", false, "Render the input as markdown")
	fs.IntVar(&maxChars, "max-chars", 0, "Maximum characters per line")
	fs.Float64Var(&fontSize, "font-size", 0, "Font size in points")
	fs.StringVar(&logo, "logo", "", "Header logo image path")
	fs.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if inputFile == "" {
		fs.Usage()
		return errors.New("input file is required")
	}
	format = strings.ToLower(format)
	if format != "pdf" && format != "txt" {
		return fmt.Errorf("unsupported format %q", format)
	}
	outputFile, err := outputPath(inputFile, outputFile, format)
	if err != nil {
		return err
	}

	opts := []codesnack.Option{
		codesnack.WithMarkdown(markdown),
		codesnack.WithDebug(verbose),
		codesnack.WithLog(stdout),
	}
	if maxChars > 0 {
		opts = append(opts, codesnack.WithMaxCharsPerLine(maxChars))
	}
	if fontSize > 0 {
		opts = append(opts, codesnack.WithFont("Helvetica", fontSize))
	}
	if logo != "" {
		opts = append(opts, codesnack.WithLogo(logo))
	}
	converter := codesnack.NewWithOptions(codesnack.WithOptions(opts...))

	if format == "txt" {
		if err := converter.ConvertFileToText(inputFile, outputFile); err != nil {
			return fmt.Errorf("converting file: %w", err)
		}
	} else if err := converter.ConvertFile(inputFile, outputFile); err != nil {
		return fmt.Errorf("converting file: %w", err)
	}

	if verbose {
		fmt.Fprintf(stdout, "Successfully converted %s to %s\n", inputFile, outputFile)
	}
	return nil
}

// outputPath picks the output file of the pdf command. Without -output it is the input
// name with the format's extension, or name.clean.ext when that would be
// the input itself. The output never overwrites the input.
func outputPath(inputFile, outputFile, format string) (string, error) {
	if outputFile == "" {
		if strings.HasPrefix(inputFile, "data:") {
			return "", errors.New("output file is required for data: URL input")
		}
		base := strings.TrimSuffix(inputFile, filepath.Ext(inputFile))
		outputFile = base + "." + format
		if samePath(inputFile, outputFile) {
			outputFile = base + ".clean." + format
		}
		return outputFile, nil
	}
	if samePath(inputFile, outputFile) {
		return "", fmt.Errorf("output %s would overwrite the input", outputFile)
	}
	return outputFile, nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

func parseRequest(fs *flag.FlagSet, args []string) (content.Request, error) {
	var tpl, topic, level, ctxText string
	fs.StringVar(&tpl, "template", string(content.LessonPlan), "Content template")
	fs.StringVar(&topic, "topic", "", "Topic to teach")
	fs.StringVar(&level, "level", "", "Learner level (default Beginner)")
	fs.StringVar(&ctxText, "context", "", "Extra context for the model")
	if err := fs.Parse(args); err != nil {
		return content.Request{}, err
	}

	if strings.TrimSpace(topic) == "" {
		return content.Request{}, errors.New("topic is required")
	}
	t, err := content.ParseTemplate(tpl)
	if err != nil {
		return content.Request{}, err
	}
	l, err := content.ParseLevel(level)
	if err != nil {
		return content.Request{}, err
	}
	return content.Request{Template: t, Topic: topic, Level: l, Context: ctxText}, nil
}

func runPrompt(args []string, stdout, stderr io.Writer) error {
	req, err := parseRequest(newFlagSet("prompt", stderr), args)
	if err != nil {
		return err
	}
	prompt, err := content.BuildPrompt(req)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, prompt)
	return nil
}

func runGenerate(args []string, stdout, stderr io.Writer) error {
	var (
		responseFile string
		outputDir    string
		verbose      bool
	)
	fs := newFlagSet("generate", stderr)
	fs.StringVar(&responseFile, "response", "", "File holding the saved model reply")
	fs.StringVar(&outputDir, "output", ".", "Directory for the PDF and text downloads")
	fs.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	req, err := parseRequest(fs, args)
	if err != nil {
		return err
	}
	if responseFile == "" {
		return errors.New("response file is required")
	}
	reply, err := os.ReadFile(responseFile)
	if err != nil {
		return fmt.Errorf("failed to read response file: %w", err)
	}

	svc := content.NewService(content.Replay{Reply: string(reply)})
	svc.Debug = verbose
	svc.Log = stdout
	res, err := svc.Generate(context.Background(), req)
	if err != nil {
		return err
	}

	converter := codesnack.NewWithOptions(codesnack.WithOptions(
		codesnack.WithTitle(string(res.Template)+": "+res.Topic),
		codesnack.WithSubject(string(res.Template)),
		codesnack.WithDebug(verbose),
		codesnack.WithLog(stdout),
	))
	pdfPath := filepath.Join(outputDir, res.Filename("pdf"))
	if err := converter.ConvertToFile(res.Output, pdfPath); err != nil {
		return err
	}
	txtPath := filepath.Join(outputDir, res.Filename("txt"))
	if err := os.WriteFile(txtPath, []byte(res.Cleaned), 0o644); err != nil {
		return fmt.Errorf("failed to write text file: %w", err)
	}

	fmt.Fprintln(stdout, res.Report())
	fmt.Fprintf(stdout, "Wrote %s and %s\n", pdfPath, txtPath)
	return nil
}

func runArena(args []string, stdout, stderr io.Writer) error {
	var (
		activity    string
		snippetFile string
		outputFile  string
		inspect     bool
		list        bool
	)
	fs := newFlagSet("arena", stderr)
	fs.StringVar(&activity, "activity", "Basic HTML Page", "Starter activity")
	fs.StringVar(&snippetFile, "snippet", "", "Use the code in this file or data: URL instead of the starter")
	fs.StringVar(&outputFile, "output", "", "Write the preview document to this file (stdout when empty)")
	fs.BoolVar(&inspect, "inspect", false, "Print a summary of the snippet instead of the preview")
	fs.BoolVar(&list, "list", false, "List the available activities")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if list {
		for _, a := range arena.Activities() {
			fmt.Fprintln(stdout, a.Name)
		}
		return nil
	}

	var snippet string
	if snippetFile != "" {
		r, err := res.NewLoader("").LoadText(snippetFile)
		if err != nil {
			return fmt.Errorf("failed to read snippet: %w", err)
		}
		snippet = r.GetString()
	} else {
		s, err := arena.Starter(activity)
		if err != nil {
			return err
		}
		snippet = s
	}

	if inspect {
		sum, err := arena.Inspect(snippet)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, sum.String())
		return nil
	}

	preview, err := arena.Preview(snippet)
	if err != nil {
		return err
	}
	if outputFile == "" {
		fmt.Fprintln(stdout, preview)
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(preview), 0o644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}
