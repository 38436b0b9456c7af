package render_test

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sonnes/ydcv/core"
	"github.com/sonnes/ydcv/render"
	"github.com/sonnes/ydcv/render/html"
	"github.com/sonnes/ydcv/render/plain"
	"github.com/sonnes/ydcv/render/terminal"
	"github.com/stretchr/testify/assert"
)

func helloEntry() *core.Entry {
	return &core.Entry{
		Query:       "hello",
		ErrorCode:   "0",
		Translation: []string{"你好"},
		Basic: &core.Basic{
			Phonetic:   "həˈləʊ",
			UKPhonetic: "həˈləʊ",
			USPhonetic: "həˈloʊ",
			Explains:   []string{"int. 喂；哈罗", "n. 表示问候"},
		},
		Web: []core.WebItem{
			{Key: "Hello", Value: []string{"你好", "您好"}},
			{Key: "Hello Kitty", Value: []string{"凯蒂猫"}},
		},
	}
}

func TestExplainFullEntryPlain(t *testing.T) {
	got := render.Explain(plain.New(), helloEntry())

	want := "hello  UK: [həˈləʊ], US: [həˈloʊ] 你好\n" +
		"  Word Explanation:\n" +
		"     * int. 喂；哈罗\n" +
		"     * n. 表示问候\n" +
		"  Web Reference:\n" +
		"     * Hello\n" +
		"       你好；您好\n" +
		"     * Hello Kitty\n" +
		"       凯蒂猫"
	assert.Equal(t, want, got)
}

func TestExplainGeneralPhonetic(t *testing.T) {
	e := &core.Entry{
		Query:       "word",
		Translation: []string{"单词"},
		Basic:       &core.Basic{Phonetic: "wɜːd"},
	}

	got := render.Explain(plain.New(), e)
	assert.Equal(t, "word [wɜːd] 单词", got)
}

func TestExplainNoPhonetic(t *testing.T) {
	e := &core.Entry{
		Query:       "word",
		Translation: []string{"单词"},
		Web:         []core.WebItem{{Key: "word", Value: []string{"单词"}}},
	}

	got := render.Explain(plain.New(), e)
	assert.Equal(t, "word  单词\n  Web Reference:\n     * word\n       单词", got)
}

func TestExplainTranslationOnly(t *testing.T) {
	e := &core.Entry{
		Query:       "how are you",
		Translation: []string{"你好吗", "你怎么样"},
	}

	got := render.Explain(plain.New(), e)
	assert.Equal(t, "how are you\n  Translation:\n    你好吗；你怎么样", got)
}

func TestExplainNoResult(t *testing.T) {
	for _, e := range []*core.Entry{core.Missing("qwzx"), {Query: "x", ErrorCode: "20"}} {
		assert.Equal(t, " -- No result for this query.", render.Explain(plain.New(), e))
	}

	got := render.Explain(terminal.New(), core.Missing("qwzx"))
	assert.Equal(t, "\x1b[31m -- No result for this query.\x1b[0m", got)
}

func TestExplainTerminal(t *testing.T) {
	r := terminal.New()
	got := render.Explain(r, helloEntry())

	assert.Contains(t, got, "\x1b[4mhello\x1b[0m")
	assert.Contains(t, got, "\x1b[33mhəˈloʊ\x1b[0m")
	assert.Contains(t, got, "\x1b[36m  Word Explanation:\x1b[0m")
	assert.Contains(t, got, "\x1b[35m您好\x1b[0m")
	assert.Equal(t, render.Explain(plain.New(), helloEntry()), ansi.Strip(got))
}

func TestExplainHTML(t *testing.T) {
	got := render.Explain(html.New(false), helloEntry())

	assert.Contains(t, got, "<u>hello</u>")
	assert.Contains(t, got, `UK: [<span color="goldenrod">həˈləʊ</span>]`)
	assert.Contains(t, got, `<span color="navy">  Web Reference:</span>`)
	assert.Contains(t, got, `<span color="purple">你好</span>；<span color="purple">您好</span>`)
}
