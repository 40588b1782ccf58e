package main

import "html/template"

type indexData struct {
	Warnings []string
	Model    string
}

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Financial Agent</title>
<script src="https://cdn.jsdelivr.net/npm/marked/marked.min.js"></script>
<style>
  body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1c2733; }
  h1 { font-size: 1.6rem; }
  form { display: flex; gap: .5rem; margin: 1rem 0; }
  input[type=text] { flex: 1; padding: .6rem .8rem; font-size: 1rem; border: 1px solid #c4ccd4; border-radius: 6px; }
  button { padding: .6rem 1.2rem; font-size: 1rem; border: 0; border-radius: 6px; background: #1668dc; color: #fff; cursor: pointer; }
  button:disabled { background: #8aa9d6; }
  .warning { background: #fff4e5; border: 1px solid #f0c27b; border-radius: 6px; padding: .6rem .9rem; margin: .5rem 0; }
  .error { background: #fdecea; border: 1px solid #e8a1a1; border-radius: 6px; padding: .6rem .9rem; margin: .5rem 0; }
  .examples { color: #5a6a7a; font-size: .9rem; }
  #spinner { display: none; margin: 1rem 0; color: #5a6a7a; }
  #result { margin-top: 1.5rem; }
  #result table { border-collapse: collapse; }
  #result td, #result th { border: 1px solid #c4ccd4; padding: .3rem .6rem; }
  .meta { color: #8a97a3; font-size: .8rem; margin-top: 1rem; }
</style>
</head>
<body>
<h1>&#128200; Financial Agent</h1>
<p>Enter your query to receive up-to-date financial analysis or news updates.</p>
{{range .Warnings}}<div class="warning">{{.}}</div>{{end}}
<form id="query-form">
  <input type="text" id="query" name="query" placeholder="e.g., TSLA stock analysis or tech sector news" autocomplete="off">
  <button type="submit" id="submit">Run Analysis</button>
</form>
<p class="examples">Examples: <em>AAPL stock analysis</em> &middot; <em>Bitcoin trends</em> &middot; <em>recent tech sector news</em></p>
<div id="spinner">Running analysis&hellip;</div>
<div id="banner"></div>
<div id="result"></div>
<div class="meta" id="meta"></div>
<div class="meta">Model: {{.Model}}</div>
<script>
const form = document.getElementById('query-form');
const spinner = document.getElementById('spinner');
const banner = document.getElementById('banner');
const result = document.getElementById('result');
const meta = document.getElementById('meta');
const submit = document.getElementById('submit');

form.addEventListener('submit', async (ev) => {
  ev.preventDefault();
  banner.innerHTML = '';
  result.innerHTML = '';
  meta.textContent = '';

  const query = document.getElementById('query').value;
  spinner.style.display = 'block';
  submit.disabled = true;
  try {
    const resp = await fetch('/analyze', {
      method: 'POST',
      headers: {'Content-Type': 'application/x-www-form-urlencoded'},
      body: new URLSearchParams({query}),
    });
    const data = await resp.json();
    if (!resp.ok) {
      banner.innerHTML = '<div class="warning"></div>';
      banner.firstChild.textContent = data.error || 'Request failed.';
      return;
    }
    result.innerHTML = marked.parse(data.answer);
    meta.textContent = 'Model: ' + data.model + ' | Last updated: ' + data.updated_at;
  } catch (err) {
    banner.innerHTML = '<div class="error">Analysis engine unavailable. Please try again later.</div>';
  } finally {
    spinner.style.display = 'none';
    submit.disabled = false;
  }
});
</script>
</body>
</html>
`
