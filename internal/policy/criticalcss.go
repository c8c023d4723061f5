package policy

// criticalCSS фиксированный набор правил для контента выше линии сгиба
const criticalCSS = `
/* Critical CSS - Above the fold */
body { margin: 0; font-family: system-ui, sans-serif; }
.container { max-width: 1200px; margin: 0 auto; padding: 0 1rem; }
.header { background: #fff; border-bottom: 1px solid #e5e7eb; }
.hero { padding: 4rem 0; text-align: center; }
h1 { font-size: 2.5rem; font-weight: 700; margin-bottom: 1rem; }
.btn { padding: 0.75rem 1.5rem; border-radius: 0.5rem; font-weight: 500; }
`

// ExtractCriticalCSS возвращает критический CSS для страницы.
// Разбор HTML не выполняется, возвращается фиксированный набор правил.
func ExtractCriticalCSS(html string) string {
	return criticalCSS
}
