package server

// indexPage is the built-in question form. It posts to /chat and renders
// the returned answer verbatim; a transport failure shows a connection
// warning instead of an error page.
var indexPage = []byte(`<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<title>Olist Analytics AI</title>
<style>
  body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
  h1 { margin-bottom: 0; }
  .caption { color: #666; margin-top: 0.25rem; }
  form { display: flex; gap: 0.5rem; margin: 1.5rem 0; }
  input[type=text] { flex: 1; padding: 0.5rem; }
  button { padding: 0.5rem 1rem; }
  #answer { white-space: pre-wrap; background: #f5f5f5; padding: 1rem; border-radius: 4px; min-height: 2rem; }
  .error { color: #b00020; }
  ul { color: #444; }
</style>
</head>
<body>
<h1>Olist Analytics AI</h1>
<p class="caption">Multi-Agent Analytics System (SQL &bull; Review Analysis &bull; Seller Performance)</p>

<p>Contoh pertanyaan:</p>
<ul>
  <li>Ada kategori apa saja di dataset?</li>
  <li>Harga rata rata dari produk kategori furniture?</li>
  <li>Produk apa yang paling sering direview positif?</li>
  <li>Bandingkan performa seller di S&atilde;o Paulo dan Rio de Janeiro</li>
</ul>

<form id="ask">
  <input type="text" id="query" placeholder="Masukkan pertanyaan Anda" autocomplete="off">
  <button type="submit">Jalankan Analisis</button>
</form>

<div id="answer"></div>

<script>
document.getElementById("ask").addEventListener("submit", async function (e) {
  e.preventDefault();
  const out = document.getElementById("answer");
  const query = document.getElementById("query").value.trim();
  if (!query) {
    out.className = "error";
    out.textContent = "Silakan masukkan pertanyaan terlebih dahulu.";
    return;
  }
  out.className = "";
  out.textContent = "Memproses pertanyaan...";
  try {
    const resp = await fetch("/chat", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ query: query }),
    });
    const data = await resp.json();
    out.textContent = data.answer;
  } catch (err) {
    out.className = "error";
    out.textContent = "Tidak dapat terhubung ke backend. Pastikan server sudah dijalankan.";
  }
});
</script>
</body>
</html>
`)
