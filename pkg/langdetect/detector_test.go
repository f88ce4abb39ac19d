package langdetect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newswire/pkg/domain"
)

func TestDetector_Metadata(t *testing.T) {
	d := New()

	tbl := []struct {
		tag  string
		lang domain.Language
	}{
		{"en-GB", domain.LangEnglish},
		{"en-us", domain.LangEnglish},
		{"pt-BR", domain.LangPortuguese},
		{"pt_br", domain.LangPortuguese},
		{"fr-CA", domain.LangFrench},
		{"es-419", domain.LangSpanish},
		{"ar", domain.LangArabic},
		{"zh-Hant", domain.LangChinese},
		{"ja-JP", domain.LangJapanese},
		{"en-NZ", domain.LangEnglish}, // primary subtag fallback
	}

	for _, tt := range tbl {
		t.Run(tt.tag, func(t *testing.T) {
			res := d.Detect(domain.DetectionInput{Tag: tt.tag, URL: "https://www.lemonde.fr/x"})
			assert.Equal(t, tt.lang, res.Language)
			assert.InDelta(t, 0.9, res.Confidence, 0.0001)
			assert.Equal(t, domain.MethodMetadata, res.Method)
		})
	}
}

func TestDetector_UnknownTagFallsThrough(t *testing.T) {
	d := New()
	res := d.Detect(domain.DetectionInput{Tag: "de-DE", URL: "https://www.lemonde.fr/international/article"})
	assert.Equal(t, domain.LangFrench, res.Language)
	assert.Equal(t, domain.MethodURL, res.Method)
}

func TestDetector_URL(t *testing.T) {
	d := New()

	tbl := []struct {
		url  string
		lang domain.Language
	}{
		{"https://www.lemonde.fr/politique/article/2024/01/01/x.html", domain.LangFrench},
		{"https://elpais.com/internacional/2024-01-01/x.html", domain.LangSpanish},
		{"https://www.bbc.com/mundo/noticias-123", domain.LangSpanish},
		{"https://www.bbc.com/arabic/articles/123", domain.LangArabic},
		{"https://www1.folha.uol.com.br/mundo/2024/01/x.shtml", domain.LangPortuguese},
		{"https://www3.nhk.or.jp/news/html/x.html", domain.LangJapanese},
		{"https://www.theguardian.com/world/2024/jan/01/x", domain.LangEnglish},
	}

	for _, tt := range tbl {
		t.Run(tt.url, func(t *testing.T) {
			res := d.Detect(domain.DetectionInput{URL: tt.url})
			assert.Equal(t, tt.lang, res.Language)
			assert.InDelta(t, 0.85, res.Confidence, 0.0001)
			assert.Equal(t, domain.MethodURL, res.Method)
		})
	}
}

func TestKeywordStrategy(t *testing.T) {
	s := NewKeywordStrategy()

	t.Run("english above threshold", func(t *testing.T) {
		res, ok := s.Detect(domain.DetectionInput{
			Title:       "The president said that the government will meet with the unions",
			Description: "Talks on the budget and the reform of the pension system are expected",
		})
		require.True(t, ok)
		assert.Equal(t, domain.LangEnglish, res.Language)
		assert.InDelta(t, 0.95, res.Confidence, 0.0001)
		assert.Equal(t, domain.MethodKeyword, res.Method)
	})

	t.Run("spanish above threshold", func(t *testing.T) {
		res, ok := s.Detect(domain.DetectionInput{
			Title: "El gobierno y los sindicatos firman hasta el viernes un acuerdo con la patronal sobre las pensiones, según fuentes del ministerio",
		})
		require.True(t, ok)
		assert.Equal(t, domain.LangSpanish, res.Language)
		assert.Greater(t, res.Confidence, 0.7)
	})

	t.Run("arabic tokens", func(t *testing.T) {
		res, ok := s.Score("قال الرئيس في بيان إن الحكومة التي تشكلت من الأحزاب على أن هذا القرار كان بين الخيارات")
		require.True(t, ok)
		assert.Equal(t, domain.LangArabic, res.Language)
	})

	t.Run("chinese substrings", func(t *testing.T) {
		res, ok := s.Score("中国的经济在今年有了新的发展，我们说这是一个好的开始，他们也不同意")
		require.True(t, ok)
		assert.Equal(t, domain.LangChinese, res.Language)
		assert.InDelta(t, 0.95, res.Confidence, 0.0001)
	})

	t.Run("japanese substrings", func(t *testing.T) {
		res, ok := s.Score("政府は新しい政策を発表しました。これは経済のための対策です。専門家からの評価などが注目されている")
		require.True(t, ok)
		assert.Equal(t, domain.LangJapanese, res.Language)
	})

	t.Run("word boundaries", func(t *testing.T) {
		// "theory" and "other" must not count as "the"
		res, ok := s.Score("theory other another")
		assert.False(t, ok)
		assert.Empty(t, res.Language)
	})

	t.Run("below threshold does not qualify", func(t *testing.T) {
		_, ok := s.Detect(domain.DetectionInput{Title: "Le match"})
		assert.False(t, ok)
		res, ok := s.Score("Le match")
		require.True(t, ok)
		assert.Equal(t, domain.LangFrench, res.Language)
		assert.InDelta(t, 0.1, res.Confidence, 0.0001)
	})
}

func TestKeywordStrategy_LatinLists(t *testing.T) {
	seen := map[string]domain.Language{}
	for _, lang := range []domain.Language{domain.LangEnglish, domain.LangSpanish, domain.LangPortuguese, domain.LangFrench} {
		for _, w := range lexicon[lang] {
			prev, dup := seen[w]
			assert.False(t, dup, "%q listed for both %s and %s", w, prev, lang)
			seen[w] = lang
		}
	}
}

func TestDetector_NewsParagraphs(t *testing.T) {
	tbl := []struct {
		lang domain.Language
		text string
	}{
		{domain.LangFrench, "Le gouvernement a annoncé mardi que la réforme des retraites sera présentée en conseil " +
			"des ministres avant la fin du mois. Selon le porte-parole, les syndicats ont été reçus à Matignon et " +
			"leur position reste ferme. Les discussions sont aussi prévues avec le patronat, mais aucune date n'a " +
			"encore été fixée pour cette rencontre dans la capitale."},
		{domain.LangSpanish, "El gobierno anunció el martes que la reforma de las pensiones será presentada al consejo " +
			"de ministros antes del fin de mes. Según el portavoz, los sindicatos ya fueron recibidos en el palacio " +
			"y su posición sigue firme. También hay conversaciones previstas con la patronal, pero todavía no se " +
			"ha fijado una fecha para ese encuentro en la capital."},
		{domain.LangPortuguese, "O governo anunciou na terça-feira que a reforma da previdência será apresentada ao " +
			"conselho de ministros antes do fim do mês. Segundo o porta-voz, os sindicatos já foram recebidos no " +
			"palácio e a sua posição continua firme. Também estão previstas conversas com os empresários, mas " +
			"ainda não foi marcada uma data para esse encontro na capital."},
		{domain.LangEnglish, "The government announced on Tuesday that the pension reform will be presented to the " +
			"cabinet before the end of the month. According to the spokesman, the unions have been received at " +
			"the palace and their position remains firm. Talks are also planned with employers, but no date has " +
			"been set for this meeting in the capital."},
	}
	d := New()
	for _, tt := range tbl {
		t.Run(string(tt.lang), func(t *testing.T) {
			res := d.Detect(domain.DetectionInput{Content: tt.text})
			assert.Equal(t, tt.lang, res.Language)
			assert.Equal(t, domain.MethodKeyword, res.Method)
			assert.Greater(t, res.Confidence, 0.7)
		})
	}

	t.Run("short french sentence scores french", func(t *testing.T) {
		res, ok := NewKeywordStrategy().Score("Le gouvernement a annoncé que la réforme sera présentée en conseil des ministres")
		require.True(t, ok)
		assert.Equal(t, domain.LangFrench, res.Language)
	})
}

func TestStatisticalStrategy(t *testing.T) {
	long := func(n int) string { return strings.Repeat("x", n) }

	t.Run("short text never invokes the model", func(t *testing.T) {
		calls := 0
		ident := func(string) (string, bool) { calls++; return "en", true }
		d := NewWithStrategies(MetadataStrategy{}, NewURLStrategy(), NewKeywordStrategy(), NewStatisticalStrategy(NewKeywordStrategy(), ident))

		res := d.Detect(domain.DetectionInput{Title: "Short headline", Description: "tiny"})
		assert.Equal(t, 0, calls)
		assert.Equal(t, domain.LangEnglish, res.Language)
		assert.Equal(t, domain.MethodFallback, res.Method)
		assert.InDelta(t, 0.3, res.Confidence, 0.0001)
	})

	t.Run("confidence by length and reliability", func(t *testing.T) {
		tbl := []struct {
			name string
			code string
			n    int
			lang domain.Language
			conf float64
		}{
			{"base reliable", "en", 60, domain.LangEnglish, 0.8},
			{"base not reliable", "ja", 60, domain.LangJapanese, 0.7},
			{"over 500 reliable", "fr", 600, domain.LangFrench, 0.9},
			{"over 500 not reliable", "ar", 600, domain.LangArabic, 0.8},
			{"over 1000 capped", "es", 1200, domain.LangSpanish, 0.95},
			{"over 1000 not reliable", "zh", 1200, domain.LangChinese, 0.9},
		}
		for _, tt := range tbl {
			t.Run(tt.name, func(t *testing.T) {
				s := NewStatisticalStrategy(NewKeywordStrategy(), func(string) (string, bool) { return tt.code, true })
				res, ok := s.Detect(domain.DetectionInput{Content: long(tt.n)})
				require.True(t, ok)
				assert.Equal(t, tt.lang, res.Language)
				assert.InDelta(t, tt.conf, res.Confidence, 0.0001)
				assert.Equal(t, domain.MethodStatistical, res.Method)
			})
		}
	})

	t.Run("unmapped code falls back to weak keyword result", func(t *testing.T) {
		s := NewStatisticalStrategy(NewKeywordStrategy(), func(string) (string, bool) { return "de", true })
		res, ok := s.Detect(domain.DetectionInput{Title: "Le championnat reprend " + long(60) + " dans deux semaines"})
		require.True(t, ok)
		assert.Equal(t, domain.LangFrench, res.Language)
		assert.Equal(t, domain.MethodKeyword, res.Method)
		assert.InDelta(t, 0.2, res.Confidence, 0.0001)
	})

	t.Run("unmapped code without keywords does not qualify", func(t *testing.T) {
		d := NewWithStrategies(NewKeywordStrategy(), NewStatisticalStrategy(NewKeywordStrategy(), func(string) (string, bool) { return "de", true }))
		res := d.Detect(domain.DetectionInput{Content: long(80)})
		assert.Equal(t, domain.LangEnglish, res.Language)
		assert.Equal(t, domain.MethodFallback, res.Method)
	})

	t.Run("model without answer falls back", func(t *testing.T) {
		s := NewStatisticalStrategy(NewKeywordStrategy(), func(string) (string, bool) { return "", false })
		_, ok := s.Detect(domain.DetectionInput{Content: long(80)})
		assert.False(t, ok)
	})
}

func TestDetector_OutputInvariants(t *testing.T) {
	d := New()
	inputs := []domain.DetectionInput{
		{},
		{Tag: "xx"},
		{URL: "not a url at all"},
		{Title: "Le gouvernement a présenté mardi un projet de loi sur les retraites qui sera examiné par le parlement dans les prochaines semaines selon le ministre"},
		{Content: "Zwei Jahre nach dem Beginn der Verhandlungen haben sich die Parteien auf einen gemeinsamen Entwurf geeinigt"},
		{Content: strings.Repeat("政府は新しい政策を発表しました。", 10)},
		{Content: strings.Repeat("Lorem ipsum dolor sit amet consectetur adipiscing elit ", 30)},
	}
	for _, in := range inputs {
		res := d.Detect(in)
		assert.True(t, res.Language.IsSupported(), "language %q", res.Language)
		assert.GreaterOrEqual(t, res.Confidence, 0.0)
		assert.LessOrEqual(t, res.Confidence, 1.0)
		assert.NotEmpty(t, res.Method)
	}
}

func TestLanguageFromTag(t *testing.T) {
	lang, ok := LanguageFromTag(" EN_gb ")
	require.True(t, ok)
	assert.Equal(t, domain.LangEnglish, lang)

	_, ok = LanguageFromTag("")
	assert.False(t, ok)
	_, ok = LanguageFromTag("ru-RU")
	assert.False(t, ok)
}
