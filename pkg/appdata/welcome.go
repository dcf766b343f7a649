package appdata

// WelcomeNoteID is the fixed id of the note seeded into an empty notes
// collection.
const WelcomeNoteID = "welcome-note"

const welcomeNoteTitle = "Добро пожаловать в Заметки"

const welcomeNoteContent = `# Добро пожаловать в Заметки! 🎉

Это ваша персональная база знаний в стиле **Obsidian**, встроенная прямо в приложение.

## 📝 Как пользоваться

### Создание заметок и папок
- **Создать папку**: введите название в поле "Новая папка..." и нажмите 📁
- **Создать заметку**: нажмите **+** в левом меню или в папке "Новая заметка"
- **Режимы**: ✏️ редактирование, 👁️ просмотр с форматированием

### Форматирование текста
Используйте панель инструментов или пишите Markdown:
- **H₁ H₂ H₃** - заголовки разных уровней (# ## ###)
- **B** - **жирный текст** (**текст**)
- **I** - *курсив* (*текст*)
- **</>** - ` + "`код`" + ` (` + "`код`" + `)
- **🔗** - [ссылки](url) ([текст](url))
- **•** - списки (- элемент)
- **1.** - нумерованные списки (1. элемент)
- **"** - цитаты (> цитата)

### Live Preview
- Переключайтесь между режимами **✏️** и **👁️**
- В режиме просмотра видите отформатированный текст
- В режиме редактирования - чистый Markdown

### Организация
- **Папки**: создавайте иерархию через селект "Корень" или внутри папок
- **Вложенность**: папки внутри папок с отступами
- **Теги**: добавляйте #теги через запятую
- **Поиск**: ищите по названию, содержимому или тегам

### Файловая структура
Слева находится дерево файлов:
- 📁 - свернутые папки (кликните чтобы развернуть)
- 📂 - развернутые папки
- 📄 - заметки
- ➕ - создать заметку в папке
- 📁 - создать подпапку в папке

## 💡 Советы

- Используйте **двойные пробелы** в конце строки для перевода
- **[[Название заметки]]** - для ссылок на другие заметки (пока не реализовано)
- Автосохранение работает автоматически

---

*Удалите эту заметку когда ознакомитесь с функционалом*`

func welcomeNote(now string) Note {
	return Note{
		ID:        WelcomeNoteID,
		Title:     welcomeNoteTitle,
		Content:   welcomeNoteContent,
		Folder:    "welcome",
		Tags:      []string{"добро-пожаловать", "инструкция", "markdown"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
